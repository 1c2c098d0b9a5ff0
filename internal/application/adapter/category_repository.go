// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch inserts several categories in a single operation.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByUser retrieves all categories for a user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindOwnedByID retrieves a category by ID scoped to the owner.
	// Returns ErrCategoryNotFound when missing or owned by someone else.
	FindOwnedByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// CountByUser counts the categories owned by a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ExistsByUserAndName checks whether the user already has a category
	// with the given name (case-insensitive).
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}
