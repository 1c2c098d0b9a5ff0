// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// fakeGoalRepository is an in-memory GoalRepository mirroring the SQL
// semantics of the real one: AddAmount increments and flips an active goal
// to achieved once the target is reached.
type fakeGoalRepository struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) FindOwnedByID(_ context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var results []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) AddAmount(_ context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.Status == entity.GoalStatusActive && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = entity.GoalStatusAchieved
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepository) DeleteOwned(_ context.Context, id, userID uuid.UUID) error {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates an active goal with a zero current amount", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())

		output, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Name:         "Emergency fund",
			TargetAmount: decimal.NewFromInt(5000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", output.Goal.Status)
		}
		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected zero current amount, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Color != entity.DefaultGoalColor {
			t.Errorf("expected default color %s, got %s", entity.DefaultGoalColor, output.Goal.Color)
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Name:         "   ",
			TargetAmount: decimal.NewFromInt(100),
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNameRequired)
	})

	t.Run("rejects a non-positive target", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Name:         "Nothing",
			TargetAmount: decimal.Zero,
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalTarget)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Name:         "Odd",
			TargetAmount: decimal.NewFromInt(100),
			Status:       "paused",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalStatus)
	})
}

func TestAddGoalAmountUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(repo *fakeGoalRepository, current, target int64, status entity.GoalStatus) *entity.Goal {
		goal := entity.NewGoal(userID, "Vacation", "", decimal.NewFromInt(target), nil, "", entity.DefaultGoalColor, "", status)
		goal.CurrentAmount = decimal.NewFromInt(current)
		_ = repo.Create(ctx, goal)
		return goal
	}

	t.Run("a partial contribution keeps the goal active", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo, 0, 2000, entity.GoalStatusActive)
		uc := NewAddGoalAmountUseCase(repo)

		output, err := uc.Execute(ctx, AddGoalAmountInput{ID: goal.ID, UserID: userID, Amount: decimal.NewFromInt(500)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected current amount 500, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", output.Goal.Status)
		}
	})

	t.Run("reaching the target flips the goal to achieved", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo, 1800, 2000, entity.GoalStatusActive)
		uc := NewAddGoalAmountUseCase(repo)

		output, err := uc.Execute(ctx, AddGoalAmountInput{ID: goal.ID, UserID: userID, Amount: decimal.NewFromInt(300)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusAchieved {
			t.Errorf("expected status achieved, got %s", output.Goal.Status)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(2100)) {
			t.Errorf("expected current amount 2100, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("a cancelled goal keeps its status", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo, 0, 100, entity.GoalStatusCancelled)
		uc := NewAddGoalAmountUseCase(repo)

		output, err := uc.Execute(ctx, AddGoalAmountInput{ID: goal.ID, UserID: userID, Amount: decimal.NewFromInt(150)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusCancelled {
			t.Errorf("expected status cancelled, got %s", output.Goal.Status)
		}
	})

	t.Run("rejects a non-positive contribution", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo, 0, 100, entity.GoalStatusActive)
		uc := NewAddGoalAmountUseCase(repo)

		_, err := uc.Execute(ctx, AddGoalAmountInput{ID: goal.ID, UserID: userID, Amount: decimal.Zero})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalContribution)
	})

	t.Run("another user's goal is not found", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo, 0, 100, entity.GoalStatusActive)
		uc := NewAddGoalAmountUseCase(repo)

		_, err := uc.Execute(ctx, AddGoalAmountInput{ID: goal.ID, UserID: uuid.New(), Amount: decimal.NewFromInt(10)})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestUpdateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(repo *fakeGoalRepository) *entity.Goal {
		goal := entity.NewGoal(userID, "Old name", "desc", decimal.NewFromInt(1000), nil, "", entity.DefaultGoalColor, "", entity.GoalStatusActive)
		goal.CurrentAmount = decimal.NewFromInt(250)
		_ = repo.Create(ctx, goal)
		return goal
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		name := "New name"
		target := decimal.NewFromInt(1500)
		output, err := uc.Execute(ctx, UpdateGoalInput{
			ID:           goal.ID,
			UserID:       userID,
			Name:         &name,
			TargetAmount: &target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != "New name" {
			t.Errorf("expected name to change, got %s", output.Goal.Name)
		}
		if output.Goal.Description != "desc" {
			t.Errorf("expected description unchanged, got %s", output.Goal.Description)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected current amount unchanged, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("overwrites the current amount when provided", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		current := decimal.NewFromInt(700)
		output, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, CurrentAmount: &current})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected current amount 700, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected no status flip on direct overwrite, got %s", output.Goal.Status)
		}
	})

	t.Run("rejects a negative current amount", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		current := decimal.NewFromInt(-1)
		_, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, CurrentAmount: &current})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalCurrent)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		status := entity.GoalStatus("paused")
		_, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, Status: &status})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalStatus)
	})

	t.Run("another user's goal is not found", func(t *testing.T) {
		repo := newFakeGoalRepository()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		name := "Hijack"
		_, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: uuid.New(), Name: &name})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeGoalRepository()
	goal := entity.NewGoal(userID, "Gone", "", decimal.NewFromInt(100), nil, "", entity.DefaultGoalColor, "", entity.GoalStatusActive)
	_ = repo.Create(ctx, goal)

	uc := NewDeleteGoalUseCase(repo)
	if err := uc.Execute(ctx, DeleteGoalInput{ID: goal.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	getUC := NewGetGoalUseCase(repo)
	_, err := getUC.Execute(ctx, GetGoalInput{ID: goal.ID, UserID: userID})
	assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func assertGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected a GoalError, got %T: %v", err, err)
	}
	if goalErr.Code != code {
		t.Errorf("expected error code %s, got %s", code, goalErr.Code)
	}
}
