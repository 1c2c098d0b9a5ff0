// Package goal contains savings-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil pointer fields
// are left unchanged.
type UpdateGoalInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	Icon          *string
	Color         *string
	CategoryName  *string
	Status        *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic. Setting CurrentAmount here
// overwrites the stored value; incremental contributions go through
// AddGoalAmountUseCase, which also handles the achieved flip.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindOwnedByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxGoalNameLength {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNameRequired,
				fmt.Sprintf("goal name is required and must not exceed %d characters", MaxGoalNameLength),
				domainerror.ErrGoalNameRequired,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalTarget,
				"target amount must be greater than zero",
				domainerror.ErrInvalidGoalTarget,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalCurrent,
				"current amount must not be negative",
				domainerror.ErrInvalidGoalCurrent,
			)
		}
		goal.CurrentAmount = *input.CurrentAmount
	}

	if input.Status != nil {
		if !entity.IsValidGoalStatus(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'active', 'achieved' or 'cancelled'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = *input.Status
	}

	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.Icon != nil {
		goal.Icon = *input.Icon
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}
	if input.CategoryName != nil {
		goal.CategoryName = *input.CategoryName
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
