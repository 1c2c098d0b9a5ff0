// Package expense contains expense aggregation use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
// Category filters by label, case-insensitively. Month (zero-indexed) and
// Year filter independently: a month alone matches across years and a
// year alone matches all its months.
type ListExpensesInput struct {
	UserID   uuid.UUID
	Category string
	Month    *int
	Year     *int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles the filtered expense listing.
type ListExpensesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(transactionRepo adapter.TransactionRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{transactionRepo: transactionRepo}
}

// Execute lists the user's expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenseType := entity.TransactionTypeExpense
	results, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Type:   &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(results))}
	for _, r := range results {
		label := categoryLabel(r.Category)

		if input.Category != "" && !matchesCategory(label, input.Category) {
			continue
		}
		if input.Month != nil && !matchesMonth(r.Transaction.Date, *input.Month) {
			continue
		}
		if input.Year != nil && !matchesYear(r.Transaction.Date, *input.Year) {
			continue
		}

		output.Expenses = append(output.Expenses, &ExpenseOutput{
			ID:          r.Transaction.ID,
			Description: r.Transaction.Description,
			Amount:      r.Transaction.Amount,
			Date:        r.Transaction.Date,
			Category:    label,
		})
	}
	return output, nil
}
