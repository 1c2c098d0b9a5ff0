// Package expense contains expense aggregation use cases.
package expense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// stubTransactionRepository serves a fixed set of transactions through
// FindByFilter; the aggregation use cases need nothing else.
type stubTransactionRepository struct {
	results []*entity.TransactionWithCategory
}

func (r *stubTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	var out []*entity.TransactionWithCategory
	for _, t := range r.results {
		if t.Transaction.UserID != filter.UserID {
			continue
		}
		if filter.Type != nil && t.Transaction.Type != *filter.Type {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTransactionRepository) CreateWithBalanceDelta(context.Context, *entity.Transaction, decimal.Decimal) error {
	return nil
}

func (r *stubTransactionRepository) FindOwnedByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *stubTransactionRepository) FindOwnedByIDWithCategory(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (r *stubTransactionRepository) UpdateWithBalanceDelta(context.Context, *entity.Transaction, decimal.Decimal) error {
	return nil
}

func (r *stubTransactionRepository) DeleteOwnedWithBalanceDelta(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal) error {
	return nil
}

func (r *stubTransactionRepository) GetSummary(context.Context, uuid.UUID, *time.Time, *time.Time) (*entity.TransactionSummary, error) {
	return nil, nil
}

func seedRepo(userID uuid.UUID) *stubTransactionRepository {
	food := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Food", Color: "#FF6B6B", Icon: "utensils"}
	travel := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Travel", Color: "#85C1E9", Icon: "plane"}

	expenseOn := func(amount int64, date time.Time, category *entity.Category) *entity.TransactionWithCategory {
		t := entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(amount),
			Date:        date,
			Description: "seed",
		}
		if category != nil {
			t.CategoryID = &category.ID
		}
		return &entity.TransactionWithCategory{Transaction: &t, Category: category}
	}

	march := func(day int) time.Time { return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC) }

	return &stubTransactionRepository{results: []*entity.TransactionWithCategory{
		expenseOn(120, march(5), food),
		expenseOn(80, march(12), food),
		expenseOn(45, march(20), nil),
		expenseOn(60, march(22), travel),
		expenseOn(200, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), nil),
		expenseOn(75, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), travel),
		{Transaction: &entity.Transaction{
			ID:     uuid.New(),
			UserID: userID,
			Type:   entity.TransactionTypeIncome,
			Amount: decimal.NewFromInt(1000),
			Date:   march(1),
		}},
	}}
}

func TestListExpensesUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc := NewListExpensesUseCase(seedRepo(userID))

	t.Run("returns only expenses", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 6 {
			t.Errorf("expected 6 expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("filters by zero-indexed month and year", func(t *testing.T) {
		month, year := 2, 2025 // March
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Month: &month, Year: &year})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 4 {
			t.Errorf("expected 4 expenses in March, got %d", len(output.Expenses))
		}
	})

	t.Run("matches category labels case-insensitively", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Category: "food"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("expected 2 food expenses, got %d", len(output.Expenses))
		}
		for _, e := range output.Expenses {
			if e.Category != "Food" {
				t.Errorf("expected category label Food, got %s", e.Category)
			}
		}
	})

	t.Run("groups absent categories under the uncategorized label", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Category: UncategorizedLabel})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("expected 2 uncategorized expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("a year filter alone covers all its months", func(t *testing.T) {
		year := 2025
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Year: &year})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 5 {
			t.Errorf("expected 5 expenses in 2025, got %d", len(output.Expenses))
		}
		for _, e := range output.Expenses {
			if e.Date.Year() != 2025 {
				t.Errorf("expected only 2025 expenses, got date %s", e.Date)
			}
		}
	})

	t.Run("a month filter alone matches across years", func(t *testing.T) {
		month := 2 // March
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Month: &month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 5 {
			t.Errorf("expected 5 March expenses across years, got %d", len(output.Expenses))
		}
	})
}

func TestExpenseStatsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc := NewExpenseStatsUseCase(seedRepo(userID))

	month, year := 2, 2025
	output, err := uc.Execute(ctx, ExpenseStatsInput{UserID: userID, Month: &month, Year: &year})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Total.Equal(decimal.NewFromInt(305)) {
		t.Errorf("expected total 305, got %s", output.Total)
	}
	if len(output.Categories) != 3 {
		t.Fatalf("expected 3 category groups, got %d", len(output.Categories))
	}

	// Groups are sorted by descending sum.
	if output.Categories[0].Category != "Food" || !output.Categories[0].Sum.Equal(decimal.NewFromInt(200)) {
		t.Errorf("unexpected first group: %s %s", output.Categories[0].Category, output.Categories[0].Sum)
	}
	if output.Categories[0].Count != 2 {
		t.Errorf("expected 2 food expenses, got %d", output.Categories[0].Count)
	}
	if output.Categories[1].Category != "Travel" {
		t.Errorf("expected second group Travel, got %s", output.Categories[1].Category)
	}
	if output.Categories[2].Category != UncategorizedLabel {
		t.Errorf("expected last group %s, got %s", UncategorizedLabel, output.Categories[2].Category)
	}

	if output.Period.Month == nil || *output.Period.Month != month {
		t.Errorf("expected period month %d, got %v", month, output.Period.Month)
	}
	if output.Period.Year == nil || *output.Period.Year != year {
		t.Errorf("expected period year %d, got %v", year, output.Period.Year)
	}

	t.Run("an unfiltered period echoes nil dimensions", func(t *testing.T) {
		output, err := uc.Execute(ctx, ExpenseStatsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Period.Month != nil || output.Period.Year != nil {
			t.Errorf("expected empty period, got %+v", output.Period)
		}
	})
}

func TestAvailableMonthsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc := NewAvailableMonthsUseCase(seedRepo(userID))

	output, err := uc.Execute(ctx, AvailableMonthsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []MonthOutput{
		{Month: 2, Year: 2025},
		{Month: 1, Year: 2025},
		{Month: 2, Year: 2024},
	}
	if len(output.Months) != len(expected) {
		t.Fatalf("expected %d months, got %d", len(expected), len(output.Months))
	}
	for i, m := range expected {
		if output.Months[i] != m {
			t.Errorf("month %d: expected %+v, got %+v", i, m, output.Months[i])
		}
	}
}
