// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory TransactionRepository that
// records the balance deltas passed to its write operations.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	deltas       []decimal.Decimal
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepository) CreateWithBalanceDelta(_ context.Context, transaction *entity.Transaction, balanceDelta decimal.Decimal) error {
	r.transactions[transaction.ID] = transaction
	r.deltas = append(r.deltas, balanceDelta)
	return nil
}

func (r *fakeTransactionRepository) FindOwnedByID(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok || t.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransactionRepository) FindOwnedByIDWithCategory(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error) {
	t, err := r.FindOwnedByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithCategory{Transaction: t}, nil
}

func (r *fakeTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	var results []*entity.TransactionWithCategory
	for _, t := range r.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		copied := *t
		results = append(results, &entity.TransactionWithCategory{Transaction: &copied})
	}
	return results, nil
}

func (r *fakeTransactionRepository) UpdateWithBalanceDelta(_ context.Context, transaction *entity.Transaction, balanceDelta decimal.Decimal) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	r.deltas = append(r.deltas, balanceDelta)
	return nil
}

func (r *fakeTransactionRepository) DeleteOwnedWithBalanceDelta(_ context.Context, id, userID uuid.UUID, balanceDelta decimal.Decimal) error {
	t, ok := r.transactions[id]
	if !ok || t.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	r.deltas = append(r.deltas, balanceDelta)
	return nil
}

func (r *fakeTransactionRepository) GetSummary(_ context.Context, userID uuid.UUID, _, _ *time.Time) (*entity.TransactionSummary, error) {
	summary := &entity.TransactionSummary{
		Income:  entity.TypeSummary{Total: decimal.Zero},
		Expense: entity.TypeSummary{Total: decimal.Zero},
	}
	for _, t := range r.transactions {
		if t.UserID != userID {
			continue
		}
		if t.Type == entity.TransactionTypeIncome {
			summary.Income.Count++
			summary.Income.Total = summary.Income.Total.Add(t.Amount)
		} else {
			summary.Expense.Count++
			summary.Expense.Total = summary.Expense.Total.Add(t.Amount)
		}
	}
	return summary, nil
}

func (r *fakeTransactionRepository) lastDelta() decimal.Decimal {
	return r.deltas[len(r.deltas)-1]
}

// fakeCategoryRepository is an in-memory CategoryRepository.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	for _, c := range categories {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var results []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			results = append(results, c)
		}
	}
	return results, nil
}

func (r *fakeCategoryRepository) FindOwnedByID(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepository) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.categories {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategoryRepository) ExistsByUserAndName(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("income applies a positive balance delta", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, newFakeCategoryRepository())

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(1000),
			Date:        date,
			Description: "Salary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Type != entity.TransactionTypeIncome {
			t.Errorf("expected type income, got %s", output.Transaction.Type)
		}
		if !repo.lastDelta().Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected balance delta 1000, got %s", repo.lastDelta())
		}
	})

	t.Run("expense applies a negative balance delta", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(250),
			Date:        date,
			Description: "Groceries",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.lastDelta().Equal(decimal.NewFromInt(-250)) {
			t.Errorf("expected balance delta -250, got %s", repo.lastDelta())
		}
	})

	t.Run("rejects an unknown transaction type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        "transfer",
			Amount:      decimal.NewFromInt(10),
			Date:        date,
			Description: "Invalid",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.Zero,
			Date:        date,
			Description: "Nothing",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(10),
			Description: "No date",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionDate)
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), newFakeCategoryRepository())

		long := make([]byte, MaxDescriptionLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(10),
			Date:        date,
			Description: string(long),
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeDescriptionTooLong)
	})

	t.Run("rejects a category owned by another user", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		foreign := entity.NewCategory(uuid.New(), "Foreign", "#000000", "tag")
		_ = categoryRepo.Create(ctx, foreign)

		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), categoryRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(10),
			Date:        date,
			Description: "Foreign category",
			CategoryID:  &foreign.ID,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTxnCategoryNotFound)
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	seed := func(repo *fakeTransactionRepository) *entity.Transaction {
		transaction := entity.NewTransaction(userID, nil, entity.TransactionTypeIncome, decimal.NewFromInt(500), date, "Bonus")
		_ = repo.CreateWithBalanceDelta(ctx, transaction, transaction.SignedAmount())
		return transaction
	}

	t.Run("balance delta is the signed difference", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo, newFakeCategoryRepository(), true)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:          existing.ID,
			UserID:      userID,
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(800),
			Date:        date,
			Description: "Corrected bonus",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.lastDelta().Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected balance delta 300, got %s", repo.lastDelta())
		}
	})

	t.Run("flipping the type swings the delta by both amounts", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo, newFakeCategoryRepository(), true)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:          existing.ID,
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(500),
			Date:        date,
			Description: "Was an expense",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// +500 income became -500 expense, so the balance moves by -1000.
		if !repo.lastDelta().Equal(decimal.NewFromInt(-1000)) {
			t.Errorf("expected balance delta -1000, got %s", repo.lastDelta())
		}
	})

	t.Run("legacy mode leaves the balance untouched", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo, newFakeCategoryRepository(), false)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:          existing.ID,
			UserID:      userID,
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(800),
			Date:        date,
			Description: "Corrected bonus",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.lastDelta().IsZero() {
			t.Errorf("expected zero balance delta, got %s", repo.lastDelta())
		}
	})

	t.Run("another user's transaction is not found", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo, newFakeCategoryRepository(), true)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:          existing.ID,
			UserID:      uuid.New(),
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(800),
			Date:        date,
			Description: "Not mine",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("deleting an expense credits the balance back", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		transaction := entity.NewTransaction(userID, nil, entity.TransactionTypeExpense, decimal.NewFromInt(120), date, "Dinner")
		_ = repo.CreateWithBalanceDelta(ctx, transaction, transaction.SignedAmount())

		uc := NewDeleteTransactionUseCase(repo, true)
		if err := uc.Execute(ctx, DeleteTransactionInput{ID: transaction.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.lastDelta().Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected balance delta 120, got %s", repo.lastDelta())
		}
	})

	t.Run("legacy mode deletes without touching the balance", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		transaction := entity.NewTransaction(userID, nil, entity.TransactionTypeIncome, decimal.NewFromInt(75), date, "Refund")
		_ = repo.CreateWithBalanceDelta(ctx, transaction, transaction.SignedAmount())

		uc := NewDeleteTransactionUseCase(repo, false)
		if err := uc.Execute(ctx, DeleteTransactionInput{ID: transaction.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.lastDelta().IsZero() {
			t.Errorf("expected zero balance delta, got %s", repo.lastDelta())
		}
	})

	t.Run("another user's transaction is not found", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		transaction := entity.NewTransaction(userID, nil, entity.TransactionTypeExpense, decimal.NewFromInt(10), date, "Coffee")
		_ = repo.CreateWithBalanceDelta(ctx, transaction, transaction.SignedAmount())

		uc := NewDeleteTransactionUseCase(repo, true)
		err := uc.Execute(ctx, DeleteTransactionInput{ID: transaction.ID, UserID: uuid.New()})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestTransactionSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	repo := newFakeTransactionRepository()
	for _, seed := range []struct {
		transactionType entity.TransactionType
		amount          int64
	}{
		{entity.TransactionTypeIncome, 1000},
		{entity.TransactionTypeExpense, 250},
		{entity.TransactionTypeExpense, 150},
	} {
		transaction := entity.NewTransaction(userID, nil, seed.transactionType, decimal.NewFromInt(seed.amount), date, "seed")
		_ = repo.CreateWithBalanceDelta(ctx, transaction, transaction.SignedAmount())
	}

	uc := NewTransactionSummaryUseCase(repo)
	output, err := uc.Execute(ctx, TransactionSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Income.Count != 1 || !output.Income.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unexpected income summary: count=%d total=%s", output.Income.Count, output.Income.Total)
	}
	if output.Expense.Count != 2 || !output.Expense.Total.Equal(decimal.NewFromInt(400)) {
		t.Errorf("unexpected expense summary: count=%d total=%s", output.Expense.Count, output.Expense.Total)
	}
	if !output.Net.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected net 600, got %s", output.Net)
	}
}

func assertTransactionErrorCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected a TransactionError, got %T: %v", err, err)
	}
	if txnErr.Code != code {
		t.Errorf("expected error code %s, got %s", code, txnErr.Code)
	}
}
