// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryOutput represents a category returned to the caller.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles category listing. A user with no categories
// gets the default set seeded before the listing, so first use never
// returns an empty palette.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute lists the user's categories, ordered by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	count, err := uc.categoryRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	if count == 0 {
		if err := uc.seedDefaults(ctx, input.UserID); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
	}
	for _, c := range categories {
		output.Categories = append(output.Categories, toCategoryOutput(c))
	}
	return output, nil
}

// seedDefaults inserts the default category set for a user.
func (uc *ListCategoriesUseCase) seedDefaults(ctx context.Context, userID uuid.UUID) error {
	defaults := make([]*entity.Category, 0, len(entity.DefaultCategories))
	for _, spec := range entity.DefaultCategories {
		defaults = append(defaults, entity.NewCategory(userID, spec.Name, spec.Color, spec.Icon))
	}

	if err := uc.categoryRepo.CreateBatch(ctx, defaults); err != nil {
		return err
	}

	slog.Info("seeded default categories", "userID", userID, "count", len(defaults))
	return nil
}

// toCategoryOutput converts a category entity to its output form.
func toCategoryOutput(c *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
