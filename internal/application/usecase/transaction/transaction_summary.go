// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// TransactionSummaryInput represents the input for the ledger summary.
// Nil dates leave that side of the range unbounded.
type TransactionSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TypeSummaryOutput aggregates count and total for one transaction type.
type TypeSummaryOutput struct {
	Count int64
	Total decimal.Decimal
}

// TransactionSummaryOutput represents the ledger summary by type.
type TransactionSummaryOutput struct {
	Income  TypeSummaryOutput
	Expense TypeSummaryOutput
	Net     decimal.Decimal
}

// TransactionSummaryUseCase aggregates the user's ledger by transaction type.
type TransactionSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewTransactionSummaryUseCase creates a new TransactionSummaryUseCase instance.
func NewTransactionSummaryUseCase(transactionRepo adapter.TransactionRepository) *TransactionSummaryUseCase {
	return &TransactionSummaryUseCase{transactionRepo: transactionRepo}
}

// Execute computes the summary.
func (uc *TransactionSummaryUseCase) Execute(ctx context.Context, input TransactionSummaryInput) (*TransactionSummaryOutput, error) {
	summary, err := uc.transactionRepo.GetSummary(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute transaction summary: %w", err)
	}

	return &TransactionSummaryOutput{
		Income: TypeSummaryOutput{
			Count: summary.Income.Count,
			Total: summary.Income.Total,
		},
		Expense: TypeSummaryOutput{
			Count: summary.Expense.Count,
			Total: summary.Expense.Total,
		},
		Net: summary.Income.Total.Sub(summary.Expense.Total),
	}, nil
}
