// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Frequency represents the recurrence cycle of a recurring transaction.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the supported cycles.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Transaction represents a financial transaction in FinApp.
//
// A recurring transaction is a definition anchored at Date: the stored record
// is the first occurrence, and further occurrences are generated virtually at
// read time. A recurring transaction always carries a Frequency; EndDate, when
// set, stops recurrence strictly after that date.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // Effective calendar date, midnight UTC
	Description string
	Amount      decimal.Decimal // Non-negative; sign is carried by Type
	Type        TransactionType
	Category    string
	Notes       string
	IsRecurring bool
	Frequency   Frequency  // Set iff IsRecurring
	EndDate     *time.Time // Optional recurrence cutoff (inclusive)
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	notes string,
	isRecurring bool,
	frequency Frequency,
	endDate *time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Notes:       notes,
		IsRecurring: isRecurring,
		Frequency:   frequency,
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Occurrence is a single calendar-dated instance of a transaction: either the
// literal stored record or a virtual occurrence projected from a recurring
// definition. Virtual occurrences are ephemeral; they are created fresh on
// every expansion and never persisted.
type Occurrence struct {
	Transaction

	// VirtualOccurrence is true for projected occurrences, false for the
	// literal stored record.
	VirtualOccurrence bool

	// OccurrenceNumber is the 1-based cycle index from the anchor date.
	// Zero for the literal record (cycle index 0 is the anchor itself).
	OccurrenceNumber int

	// ParentID links a virtual occurrence back to its recurring definition.
	ParentID *uuid.UUID

	// IsPast is true when the occurrence date is before "today".
	IsPast bool
}
