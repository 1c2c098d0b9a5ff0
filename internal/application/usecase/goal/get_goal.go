// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal *GoalOutput
}

// GetGoalUseCase handles fetching a single goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute fetches the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindOwnedByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return &GetGoalOutput{Goal: toGoalOutput(goal)}, nil
}
