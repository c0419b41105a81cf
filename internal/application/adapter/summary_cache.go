// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache defines the interface for the dashboard summary read cache.
// A cache miss returns (nil, nil); cache failures must never break the
// dashboard, so implementations log and degrade rather than error.
type SummaryCache interface {
	// Get returns the cached summary payload for a user, or nil on miss.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the summary payload for a user with the configured TTL.
	Set(ctx context.Context, userID uuid.UUID, payload []byte) error

	// Invalidate drops the cached summary for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
