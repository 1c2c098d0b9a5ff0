// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CategoryOutput represents category display fields attached to a transaction.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
}

// TransactionOutput represents a transaction returned to the caller.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  *uuid.UUID
	Category    *CategoryOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// newTransactionOutput builds a TransactionOutput from an entity and its
// optional category.
func newTransactionOutput(t *entity.Transaction, c *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if c != nil {
		out.Category = &CategoryOutput{
			ID:    c.ID,
			Name:  c.Name,
			Color: c.Color,
			Icon:  c.Icon,
		}
	}
	return out
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
