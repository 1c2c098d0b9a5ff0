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
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// balanceRepository implements the adapter.BalanceRepository interface.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance repository instance.
func NewBalanceRepository(db *gorm.DB) adapter.BalanceRepository {
	return &balanceRepository{
		db: db,
	}
}

// GetOrCreate retrieves the user's balance row, creating a zero balance if
// none exists yet.
func (r *balanceRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Balance, error) {
	var balanceModel model.BalanceModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel)
	if result.Error == nil {
		return balanceModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	balance := entity.NewBalance(userID)
	if err := r.db.WithContext(ctx).Create(model.BalanceFromEntity(balance)).Error; err != nil {
		return nil, err
	}
	return balance, nil
}

// applyBalanceDelta adds delta to the user's balance inside the given
// transaction, creating the row when it does not exist yet. A zero delta is
// a no-op.
func applyBalanceDelta(tx *gorm.DB, userID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	result := tx.Model(&model.BalanceModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", delta),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		balance := entity.NewBalance(userID)
		balance.CurrentAmount = delta
		return tx.Create(model.BalanceFromEntity(balance)).Error
	}
	return nil
}
