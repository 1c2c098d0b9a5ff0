// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// AddGoalAmountInput represents the input for contributing to a goal.
type AddGoalAmountInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// AddGoalAmountOutput represents the output of contributing to a goal.
type AddGoalAmountOutput struct {
	Goal *GoalOutput
}

// AddGoalAmountUseCase handles incremental goal contributions. The
// increment and the active-to-achieved status flip happen in one database
// transaction, so concurrent contributions never lose an update.
type AddGoalAmountUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddGoalAmountUseCase creates a new AddGoalAmountUseCase instance.
func NewAddGoalAmountUseCase(goalRepo adapter.GoalRepository) *AddGoalAmountUseCase {
	return &AddGoalAmountUseCase{goalRepo: goalRepo}
}

// Execute performs the contribution.
func (uc *AddGoalAmountUseCase) Execute(ctx context.Context, input AddGoalAmountInput) (*AddGoalAmountOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidGoalContribution,
		)
	}

	goal, err := uc.goalRepo.AddAmount(ctx, input.ID, input.UserID, input.Amount)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to add amount to goal: %w", err)
	}

	return &AddGoalAmountOutput{Goal: toGoalOutput(goal)}, nil
}
