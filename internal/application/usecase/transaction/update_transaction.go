// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// All mutable fields are replaced; the transaction's owner never changes.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  *uuid.UUID
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
//
// With consistentBalance enabled the user's balance is adjusted by the
// difference between the new and old signed amounts, in the same database
// transaction as the update. Disabled, updates leave the balance untouched
// and it drifts from the ledger, matching the legacy behavior.
type UpdateTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	consistentBalance bool
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	consistentBalance bool,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		consistentBalance: consistentBalance,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Amount, input.Date, input.Description); err != nil {
		return nil, err
	}

	existing, err := uc.transactionRepo.FindOwnedByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	var category *entity.Category
	if input.CategoryID != nil {
		cat, err := uc.categoryRepo.FindOwnedByID(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		category = cat
	}

	oldSigned := existing.SignedAmount()

	existing.Type = input.Type
	existing.Amount = input.Amount
	existing.Date = input.Date
	existing.Description = input.Description
	existing.CategoryID = input.CategoryID
	existing.UpdatedAt = time.Now().UTC()

	balanceDelta := decimal.Zero
	if uc.consistentBalance {
		balanceDelta = existing.SignedAmount().Sub(oldSigned)
	}

	if err := uc.transactionRepo.UpdateWithBalanceDelta(ctx, existing, balanceDelta); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(existing, category),
	}, nil
}
