// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the fallback color for user-created categories.
const DefaultCategoryColor = "#95a5a6"

// DefaultCategoryIcon is the fallback icon for user-created categories.
const DefaultCategoryIcon = "circle"

// Category represents a transaction category owned by a single user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Defaulting of color and icon
// is applied in the application layer before calling this constructor.
func NewCategory(userID uuid.UUID, name, color, icon string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategorySpec describes one entry of the per-user default set.
type DefaultCategorySpec struct {
	Name  string
	Color string
	Icon  string
}

// DefaultCategories is the fixed set seeded for a user on first category
// listing. Order matters only for seeding; listings sort by name.
var DefaultCategories = []DefaultCategorySpec{
	{Name: "Food & Dining", Color: "#FF6B6B", Icon: "utensils"},
	{Name: "Transportation", Color: "#4ECDC4", Icon: "car"},
	{Name: "Shopping", Color: "#45B7D1", Icon: "shopping-bag"},
	{Name: "Entertainment", Color: "#F7DC6F", Icon: "film"},
	{Name: "Bills & Utilities", Color: "#BB8FCE", Icon: "zap"},
	{Name: "Healthcare", Color: "#F8C471", Icon: "heart-pulse"},
	{Name: "Education", Color: "#82E0AA", Icon: "book"},
	{Name: "Travel", Color: "#85C1E9", Icon: "plane"},
	{Name: "Other", Color: "#D5DBDB", Icon: "clipboard"},
}
