// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is the single running total derived from a user's ledger.
// Exactly one row exists per user; CurrentAmount equals the signed sum of
// all of the user's transactions.
type Balance struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CurrentAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBalance creates a zero balance for a user.
func NewBalance(userID uuid.UUID) *Balance {
	now := time.Now().UTC()
	return &Balance{
		ID:            uuid.New(),
		UserID:        userID,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
