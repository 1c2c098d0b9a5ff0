// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Description  string  `json:"description,omitempty"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date,omitempty"`
	Icon         string  `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color        string  `json:"color,omitempty" binding:"omitempty,len=7"`
	Category     string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Status       string  `json:"status,omitempty" binding:"omitempty,oneof=active achieved cancelled"`
}

// UpdateGoalRequest represents the request body for goal update.
// Absent fields are left unchanged.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount,omitempty" binding:"omitempty,gte=0"`
	TargetDate    *string  `json:"target_date,omitempty"`
	Icon          *string  `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color         *string  `json:"color,omitempty" binding:"omitempty,len=7"`
	Category      *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=active achieved cancelled"`
}

// AddGoalAmountRequest represents the request body for a goal contribution.
type AddGoalAmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	TargetDate    *string   `json:"target_date,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	Color         string    `json:"color,omitempty"`
	Category      string    `json:"category,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(g *goal.GoalOutput) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Icon:          g.Icon,
		Color:         g.Color,
		Category:      g.CategoryName,
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.TargetDate != nil {
		targetDate := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &targetDate
	}
	return response
}

// ToGoalListResponse converts goal outputs to a list response.
func ToGoalListResponse(goals []*goal.GoalOutput) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, 0, len(goals)),
	}
	for _, g := range goals {
		response.Goals = append(response.Goals, ToGoalResponse(g))
	}
	return response
}
