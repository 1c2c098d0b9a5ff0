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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithBalanceDelta inserts a transaction and applies balanceDelta to
// the owner's balance in the same database transaction.
func (r *transactionRepository) CreateWithBalanceDelta(
	ctx context.Context,
	transaction *entity.Transaction,
	balanceDelta decimal.Decimal,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return applyBalanceDelta(tx, transaction.UserID, balanceDelta)
	})
}

// FindOwnedByID retrieves a transaction by ID scoped to the owner.
func (r *transactionRepository) FindOwnedByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindOwnedByIDWithCategory retrieves a transaction with its category,
// scoped to the owner.
func (r *transactionRepository) FindOwnedByIDWithCategory(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithCategory(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// UpdateWithBalanceDelta saves the modified transaction and applies
// balanceDelta to the owner's balance in the same database transaction.
func (r *transactionRepository) UpdateWithBalanceDelta(
	ctx context.Context,
	transaction *entity.Transaction,
	balanceDelta decimal.Decimal,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
			Select("CategoryID", "Type", "Amount", "Date", "Description", "UpdatedAt").
			Updates(transactionModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return applyBalanceDelta(tx, transaction.UserID, balanceDelta)
	})
}

// DeleteOwnedWithBalanceDelta soft-deletes an owned transaction and applies
// balanceDelta to the owner's balance in the same database transaction.
func (r *transactionRepository) DeleteOwnedWithBalanceDelta(
	ctx context.Context,
	id, userID uuid.UUID,
	balanceDelta decimal.Decimal,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return applyBalanceDelta(tx, userID, balanceDelta)
	})
}

// GetSummary aggregates count and total per transaction type for a user,
// optionally restricted to a date range.
func (r *transactionRepository) GetSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*entity.TransactionSummary, error) {
	var rows []struct {
		Type  string          `gorm:"column:type"`
		Count int64           `gorm:"column:count"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", endDate)
	}

	result := query.
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	summary := &entity.TransactionSummary{
		Income:  entity.TypeSummary{Total: decimal.Zero},
		Expense: entity.TypeSummary{Total: decimal.Zero},
	}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			summary.Income = entity.TypeSummary{Count: row.Count, Total: row.Total}
		case entity.TransactionTypeExpense:
			summary.Expense = entity.TypeSummary{Count: row.Count, Total: row.Total}
		}
	}
	return summary, nil
}
