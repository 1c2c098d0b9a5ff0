// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BalanceModel represents the balances table in the database.
// One row per user, enforced by the unique index.
type BalanceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// ToEntity converts a BalanceModel to a domain Balance entity.
func (m *BalanceModel) ToEntity() *entity.Balance {
	return &entity.Balance{
		ID:            m.ID,
		UserID:        m.UserID,
		CurrentAmount: m.CurrentAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BalanceFromEntity creates a BalanceModel from a domain Balance entity.
func BalanceFromEntity(balance *entity.Balance) *BalanceModel {
	return &BalanceModel{
		ID:            balance.ID,
		UserID:        balance.UserID,
		CurrentAmount: balance.CurrentAmount,
		CreatedAt:     balance.CreatedAt,
		UpdatedAt:     balance.UpdatedAt,
	}
}
