// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

func adapterFilter(userID uuid.UUID, txType *entity.TransactionType) adapter.TransactionFilter {
	return adapter.TransactionFilter{UserID: userID, Type: txType}
}

// newTestDB opens a private in-memory SQLite database, limited to one
// connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BalanceModel{},
		&model.GoalModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustBalance(t *testing.T, db *gorm.DB, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	var balanceModel model.BalanceModel
	if err := db.Where("user_id = ?", userID).First(&balanceModel).Error; err != nil {
		t.Fatalf("failed to load balance: %v", err)
	}
	return balanceModel.CurrentAmount
}

func TestTransactionRepositoryBalanceMaintenance(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	income := entity.NewTransaction(userID, nil, entity.TransactionTypeIncome,
		decimal.NewFromInt(2500), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "salary")
	if err := repo.CreateWithBalanceDelta(ctx, income, income.SignedAmount()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mustBalance(t, db, userID); !got.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("expected balance 2500 after income, got %s", got)
	}

	expense := entity.NewTransaction(userID, nil, entity.TransactionTypeExpense,
		decimal.NewFromInt(700), time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "rent")
	if err := repo.CreateWithBalanceDelta(ctx, expense, expense.SignedAmount()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mustBalance(t, db, userID); !got.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("expected balance 1800 after expense, got %s", got)
	}

	t.Run("update applies the delta between old and new amounts", func(t *testing.T) {
		expense.Amount = decimal.NewFromInt(500)
		// old signed -700, new signed -500
		if err := repo.UpdateWithBalanceDelta(ctx, expense, decimal.NewFromInt(200)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mustBalance(t, db, userID); !got.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected balance 2000 after update, got %s", got)
		}
	})

	t.Run("delete reverses the signed amount and soft-deletes", func(t *testing.T) {
		if err := repo.DeleteOwnedWithBalanceDelta(ctx, expense.ID, userID, decimal.NewFromInt(500)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mustBalance(t, db, userID); !got.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected balance 2500 after delete, got %s", got)
		}

		if _, err := repo.FindOwnedByID(ctx, expense.ID, userID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected a deleted transaction to be not found, got %v", err)
		}

		var count int64
		if err := db.Unscoped().Model(&model.TransactionModel{}).Where("id = ?", expense.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected the row to survive soft delete, got %d rows", count)
		}
	})

	t.Run("a zero delta leaves the balance untouched", func(t *testing.T) {
		legacy := entity.NewTransaction(userID, nil, entity.TransactionTypeExpense,
			decimal.NewFromInt(50), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "legacy mode")
		if err := repo.CreateWithBalanceDelta(ctx, legacy, decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mustBalance(t, db, userID); !got.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("expected balance unchanged, got %s", got)
		}
	})
}

func TestTransactionRepositoryQueries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	userID := uuid.New()

	food := entity.NewCategory(userID, "Food", "#FF6B6B", "utensils")
	if err := categoryRepo.Create(ctx, food); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed := func(txType entity.TransactionType, amount int64, day int, categoryID *uuid.UUID) *entity.Transaction {
		tx := entity.NewTransaction(userID, categoryID, txType,
			decimal.NewFromInt(amount), time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), "seed")
		if err := repo.CreateWithBalanceDelta(ctx, tx, tx.SignedAmount()); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
		return tx
	}

	seed(entity.TransactionTypeIncome, 1000, 1, nil)
	seed(entity.TransactionTypeExpense, 250, 5, &food.ID)
	seed(entity.TransactionTypeExpense, 150, 10, nil)

	t.Run("filters by type and orders newest first", func(t *testing.T) {
		expenseType := entity.TransactionTypeExpense
		results, err := repo.FindByFilter(ctx, adapterFilter(userID, &expenseType))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(results))
		}
		if !results[0].Transaction.Date.After(results[1].Transaction.Date) {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("preloads the category", func(t *testing.T) {
		expenseType := entity.TransactionTypeExpense
		results, err := repo.FindByFilter(ctx, adapterFilter(userID, &expenseType))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var categorized *entity.TransactionWithCategory
		for _, r := range results {
			if r.Transaction.CategoryID != nil {
				categorized = r
			}
		}
		if categorized == nil || categorized.Category == nil {
			t.Fatal("expected the categorized expense to carry its category")
		}
		if categorized.Category.Name != "Food" {
			t.Errorf("expected category Food, got %s", categorized.Category.Name)
		}
	})

	t.Run("another user sees nothing", func(t *testing.T) {
		results, err := repo.FindByFilter(ctx, adapterFilter(uuid.New(), nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no transactions for a stranger, got %d", len(results))
		}
	})

	t.Run("summary aggregates per type", func(t *testing.T) {
		summary, err := repo.GetSummary(ctx, userID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Income.Count != 1 || !summary.Income.Total.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("unexpected income summary: %+v", summary.Income)
		}
		if summary.Expense.Count != 2 || !summary.Expense.Total.Equal(decimal.NewFromInt(400)) {
			t.Errorf("unexpected expense summary: %+v", summary.Expense)
		}
	})
}

func TestGoalRepositoryAddAmount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	userID := uuid.New()

	goal := entity.NewGoal(userID, "Vacation", "", decimal.NewFromInt(2000), nil, "", entity.DefaultGoalColor, "", entity.GoalStatusActive)
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("increments below the target without flipping", func(t *testing.T) {
		updated, err := repo.AddAmount(ctx, goal.ID, userID, decimal.NewFromInt(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected current amount 500, got %s", updated.CurrentAmount)
		}
		if updated.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", updated.Status)
		}
	})

	t.Run("flips to achieved when the target is reached", func(t *testing.T) {
		updated, err := repo.AddAmount(ctx, goal.ID, userID, decimal.NewFromInt(1600))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(2100)) {
			t.Errorf("expected current amount 2100, got %s", updated.CurrentAmount)
		}
		if updated.Status != entity.GoalStatusAchieved {
			t.Errorf("expected status achieved, got %s", updated.Status)
		}
	})

	t.Run("an achieved goal stays achieved on further contributions", func(t *testing.T) {
		updated, err := repo.AddAmount(ctx, goal.ID, userID, decimal.NewFromInt(100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entity.GoalStatusAchieved {
			t.Errorf("expected status achieved, got %s", updated.Status)
		}
	})

	t.Run("another user's goal is not found", func(t *testing.T) {
		_, err := repo.AddAmount(ctx, goal.ID, uuid.New(), decimal.NewFromInt(10))
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestGoalRepositoryDeleteOwned(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	userID := uuid.New()

	goal := entity.NewGoal(userID, "Gone", "", decimal.NewFromInt(100), nil, "", entity.DefaultGoalColor, "", entity.GoalStatusActive)
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteOwned(ctx, goal.ID, uuid.New()); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound for a stranger, got %v", err)
	}
	if err := repo.DeleteOwned(ctx, goal.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindOwnedByID(ctx, goal.ID, userID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected a deleted goal to be not found, got %v", err)
	}
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	userID := uuid.New()

	if err := repo.CreateBatch(ctx, []*entity.Category{
		entity.NewCategory(userID, "Travel", "#85C1E9", "plane"),
		entity.NewCategory(userID, "Food", "#FF6B6B", "utensils"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("lists alphabetically", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Food" || categories[1].Name != "Travel" {
			t.Errorf("unexpected order: %s, %s", categories[0].Name, categories[1].Name)
		}
	})

	t.Run("counts per user", func(t *testing.T) {
		count, err := repo.CountByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2, got %d", count)
		}
		other, err := repo.CountByUser(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if other != 0 {
			t.Errorf("expected 0 for a stranger, got %d", other)
		}
	})

	t.Run("name existence check ignores case", func(t *testing.T) {
		exists, err := repo.ExistsByUserAndName(ctx, userID, "fOOd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a case-insensitive match")
		}
		exists, err = repo.ExistsByUserAndName(ctx, userID, "Pets")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no match for an unknown name")
		}
	})

	t.Run("ownership scoping on lookup", func(t *testing.T) {
		categories, _ := repo.FindByUser(ctx, userID)
		_, err := repo.FindOwnedByID(ctx, categories[0].ID, uuid.New())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound for a stranger, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("user@example.com", "User", "hash-1")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("finds by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("updates the password hash", func(t *testing.T) {
		if err := repo.UpdatePassword(ctx, user.ID, "hash-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.PasswordHash != "hash-2" {
			t.Errorf("expected the new hash, got %s", found.PasswordHash)
		}
	})

	t.Run("password update for an unknown user fails", func(t *testing.T) {
		err := repo.UpdatePassword(ctx, uuid.New(), "hash-3")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("reports email existence", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the email to exist")
		}
	})
}

func TestBalanceRepositoryGetOrCreate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBalanceRepository(db)
	userID := uuid.New()

	balance, err := repo.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.CurrentAmount.IsZero() {
		t.Errorf("expected a zero starting balance, got %s", balance.CurrentAmount)
	}

	again, err := repo.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != balance.ID {
		t.Error("expected the same balance row on repeated calls")
	}

	var count int64
	if err := db.Model(&model.BalanceModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one balance row, got %d", count)
	}
}
