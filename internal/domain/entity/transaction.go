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

// Transaction represents a single ledger entry. Amount is always stored
// positive; Type determines the sign of its balance contribution.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID // Weak reference, survives category deletion
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID *uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the transaction's contribution to the running
// balance: positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionWithCategory pairs a transaction with its category display
// fields. Category is nil for uncategorized or dangling references.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TypeSummary aggregates count and total for one transaction type.
type TypeSummary struct {
	Count int64
	Total decimal.Decimal
}

// TransactionSummary aggregates the ledger by transaction type.
type TransactionSummary struct {
	Income  TypeSummary
	Expense TypeSummary
}
