// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// tokenClaims represents the claims FinApp expects in an access token issued
// by the identity provider.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. FinApp only
// validates tokens; issuing them is the identity provider's job.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid user ID in token subject",
			domainerror.ErrInvalidToken,
		)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: expiresAt,
	}, nil
}
