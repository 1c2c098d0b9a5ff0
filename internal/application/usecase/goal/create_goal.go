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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
	Icon         string
	Color        string
	CategoryName string
	Status       entity.GoalStatus
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation. New goals start with a zero current
// amount regardless of input.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			fmt.Sprintf("goal name is required and must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrGoalNameRequired,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target amount must be greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.GoalStatusActive
	}
	if !entity.IsValidGoalStatus(status) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be 'active', 'achieved' or 'cancelled'",
			domainerror.ErrInvalidGoalStatus,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultGoalColor
	}

	goal := entity.NewGoal(
		input.UserID,
		name,
		input.Description,
		input.TargetAmount,
		input.TargetDate,
		input.Icon,
		color,
		input.CategoryName,
		status,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
