// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BalanceRepository defines the interface for balance persistence operations.
// Balance mutations happen through the transaction repository so that they
// share a database transaction with the ledger write.
type BalanceRepository interface {
	// GetOrCreate retrieves the user's balance row, creating a zero balance
	// if none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Balance, error)
}
