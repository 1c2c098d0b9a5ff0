// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
//
// With consistentBalance enabled the deleted transaction's signed amount is
// reversed out of the user's balance in the same database transaction.
type DeleteTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	consistentBalance bool
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	consistentBalance bool,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo:   transactionRepo,
		consistentBalance: consistentBalance,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := uc.transactionRepo.FindOwnedByID(ctx, input.ID, input.UserID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	balanceDelta := decimal.Zero
	if uc.consistentBalance {
		balanceDelta = existing.SignedAmount().Neg()
	}

	if err := uc.transactionRepo.DeleteOwnedWithBalanceDelta(ctx, input.ID, input.UserID, balanceDelta); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
