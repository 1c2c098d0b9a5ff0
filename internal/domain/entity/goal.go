// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusAchieved  GoalStatus = "achieved"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// DefaultGoalColor is the fallback color for goals.
const DefaultGoalColor = "#a682ff"

// Goal represents a savings target with incremental contributions.
// CategoryName is a free-text label, not a foreign key.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Icon          string
	Color         string
	CategoryName  string
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity with a zero current amount.
func NewGoal(
	userID uuid.UUID,
	name, description string,
	targetAmount decimal.Decimal,
	targetDate *time.Time,
	icon, color, categoryName string,
	status GoalStatus,
) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Icon:          icon,
		Color:         color,
		CategoryName:  categoryName,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidGoalStatus reports whether s is a known goal status.
func IsValidGoalStatus(s GoalStatus) bool {
	return s == GoalStatusActive || s == GoalStatusAchieved || s == GoalStatusCancelled
}
