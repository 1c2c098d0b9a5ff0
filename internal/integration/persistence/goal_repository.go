// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindOwnedByID retrieves a goal by ID scoped to the owner.
func (r *goalRepository) FindOwnedByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all goals for a user, newest first.
func (r *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Select("Name", "Description", "TargetAmount", "CurrentAmount", "TargetDate", "Icon", "Color", "CategoryName", "Status", "UpdatedAt").
		Updates(goalModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// AddAmount atomically increments the goal's current amount and flips an
// active goal to achieved when the target is reached. The increment runs as
// a single SQL update so concurrent contributions never lose an update.
func (r *goalRepository) AddAmount(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	var goalModel model.GoalModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&model.GoalModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", amount),
				"updated_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}

		// Flip active goals that reached their target. Cancelled and
		// already achieved goals keep their status.
		result = tx.Model(&model.GoalModel{}).
			Where("id = ? AND user_id = ? AND status = ? AND current_amount >= target_amount",
				id, userID, string(entity.GoalStatusActive)).
			Updates(map[string]interface{}{
				"status":     string(entity.GoalStatusAchieved),
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}

		return tx.Where("id = ?", id).First(&goalModel).Error
	})
	if err != nil {
		return nil, err
	}

	return goalModel.ToEntity(), nil
}

// DeleteOwned soft-deletes an owned goal.
func (r *goalRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.GoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
