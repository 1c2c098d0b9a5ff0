// Package expense contains expense aggregation use cases.
package expense

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ExpenseStatsInput represents the input for expense statistics.
// Month (zero-indexed) and Year filter independently: a month alone
// matches across years and a year alone matches all its months.
type ExpenseStatsInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
}

// CategoryStats aggregates the expenses of one category label.
type CategoryStats struct {
	Category     string
	Sum          decimal.Decimal
	Count        int
	Transactions []*ExpenseOutput
}

// StatsPeriod echoes the month/year filter the statistics were computed
// for. A nil field means that dimension was unfiltered.
type StatsPeriod struct {
	Month *int
	Year  *int
}

// ExpenseStatsOutput represents the output of expense statistics.
// Categories are ordered by descending sum.
type ExpenseStatsOutput struct {
	Categories []*CategoryStats
	Total      decimal.Decimal
	Period     StatsPeriod
}

// ExpenseStatsUseCase groups a user's expenses by category label.
type ExpenseStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExpenseStatsUseCase creates a new ExpenseStatsUseCase instance.
func NewExpenseStatsUseCase(transactionRepo adapter.TransactionRepository) *ExpenseStatsUseCase {
	return &ExpenseStatsUseCase{transactionRepo: transactionRepo}
}

// Execute computes the statistics.
func (uc *ExpenseStatsUseCase) Execute(ctx context.Context, input ExpenseStatsInput) (*ExpenseStatsOutput, error) {
	expenseType := entity.TransactionTypeExpense
	results, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Type:   &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	groups := make(map[string]*CategoryStats)
	order := make([]string, 0)
	total := decimal.Zero

	for _, r := range results {
		if input.Month != nil && !matchesMonth(r.Transaction.Date, *input.Month) {
			continue
		}
		if input.Year != nil && !matchesYear(r.Transaction.Date, *input.Year) {
			continue
		}

		label := categoryLabel(r.Category)
		group, ok := groups[label]
		if !ok {
			group = &CategoryStats{Category: label, Sum: decimal.Zero}
			groups[label] = group
			order = append(order, label)
		}

		group.Sum = group.Sum.Add(r.Transaction.Amount)
		group.Count++
		group.Transactions = append(group.Transactions, &ExpenseOutput{
			ID:          r.Transaction.ID,
			Description: r.Transaction.Description,
			Amount:      r.Transaction.Amount,
			Date:        r.Transaction.Date,
			Category:    label,
		})
		total = total.Add(r.Transaction.Amount)
	}

	categories := make([]*CategoryStats, 0, len(groups))
	for _, label := range order {
		categories = append(categories, groups[label])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Sum.GreaterThan(categories[j].Sum)
	})

	return &ExpenseStatsOutput{
		Categories: categories,
		Total:      total,
		Period:     StatsPeriod{Month: input.Month, Year: input.Year},
	}, nil
}
