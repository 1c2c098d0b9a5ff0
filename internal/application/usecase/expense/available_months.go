// Package expense contains expense aggregation use cases.
package expense

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// MonthOutput represents one month with recorded expenses.
// Month is zero-indexed: January is 0.
type MonthOutput struct {
	Month int
	Year  int
}

// AvailableMonthsInput represents the input for the month listing.
type AvailableMonthsInput struct {
	UserID uuid.UUID
}

// AvailableMonthsOutput represents the output of the month listing,
// most recent month first.
type AvailableMonthsOutput struct {
	Months []MonthOutput
}

// AvailableMonthsUseCase lists the distinct months that have expenses.
type AvailableMonthsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewAvailableMonthsUseCase creates a new AvailableMonthsUseCase instance.
func NewAvailableMonthsUseCase(transactionRepo adapter.TransactionRepository) *AvailableMonthsUseCase {
	return &AvailableMonthsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the months.
func (uc *AvailableMonthsUseCase) Execute(ctx context.Context, input AvailableMonthsInput) (*AvailableMonthsOutput, error) {
	expenseType := entity.TransactionTypeExpense
	results, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Type:   &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	seen := make(map[MonthOutput]struct{})
	months := make([]MonthOutput, 0)
	for _, r := range results {
		m := MonthOutput{
			Month: int(r.Transaction.Date.Month()) - 1,
			Year:  r.Transaction.Date.Year(),
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}

	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})

	return &AvailableMonthsOutput{Months: months}, nil
}
