// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindOwnedByID retrieves a goal by ID scoped to the owner.
	// Returns ErrGoalNotFound when missing or owned by someone else.
	FindOwnedByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// AddAmount atomically increments the goal's current amount and flips an
	// active goal to achieved when the target is reached, all within one
	// database transaction. Returns the updated goal, or ErrGoalNotFound
	// when missing or owned by someone else.
	AddAmount(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error)

	// DeleteOwned soft-deletes an owned goal. Returns ErrGoalNotFound when
	// missing or owned by someone else.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}
