// Package goal contains savings-goal-related use cases.
package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// GoalOutput represents a goal returned to the caller.
type GoalOutput struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Icon          string
	Color         string
	CategoryName  string
	Status        entity.GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// toGoalOutput converts a goal entity to its output form.
func toGoalOutput(g *entity.Goal) *GoalOutput {
	return &GoalOutput{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Icon:          g.Icon,
		Color:         g.Color,
		CategoryName:  g.CategoryName,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
