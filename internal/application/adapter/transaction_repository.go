// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Limit and Offset are ignored when zero.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Limit      int
	Offset     int
}

// TransactionRepository defines the interface for transaction persistence
// operations. Write operations that change a transaction's balance
// contribution take a balanceDelta applied to the user's balance row in
// the same database transaction, so the running balance and the ledger
// never diverge.
type TransactionRepository interface {
	// CreateWithBalanceDelta inserts a transaction and applies balanceDelta
	// to the owner's balance atomically, creating the balance row if absent.
	CreateWithBalanceDelta(ctx context.Context, transaction *entity.Transaction, balanceDelta decimal.Decimal) error

	// FindOwnedByID retrieves a transaction by ID scoped to the owner.
	// Returns ErrTransactionNotFound when missing or owned by someone else.
	FindOwnedByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindOwnedByIDWithCategory retrieves a transaction with its category,
	// scoped to the owner.
	FindOwnedByIDWithCategory(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions matching the filter, newest first,
	// each paired with its category when one is still present.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// UpdateWithBalanceDelta saves the modified transaction and applies
	// balanceDelta to the owner's balance atomically.
	UpdateWithBalanceDelta(ctx context.Context, transaction *entity.Transaction, balanceDelta decimal.Decimal) error

	// DeleteOwnedWithBalanceDelta soft-deletes an owned transaction and
	// applies balanceDelta to the owner's balance atomically. Returns
	// ErrTransactionNotFound when missing or owned by someone else.
	DeleteOwnedWithBalanceDelta(ctx context.Context, id, userID uuid.UUID, balanceDelta decimal.Decimal) error

	// GetSummary aggregates count and total per transaction type for a user,
	// optionally restricted to a date range.
	GetSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*entity.TransactionSummary, error)
}
