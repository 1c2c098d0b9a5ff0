// Package balance contains balance-related use cases.
package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// GetBalanceInput represents the input for fetching the running balance.
type GetBalanceInput struct {
	UserID uuid.UUID
}

// GetBalanceOutput represents the output of fetching the running balance.
type GetBalanceOutput struct {
	CurrentAmount decimal.Decimal
	UpdatedAt     time.Time
}

// GetBalanceUseCase handles fetching the user's running balance. A user
// without a balance row gets a zero balance created on first read.
type GetBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(balanceRepo adapter.BalanceRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{balanceRepo: balanceRepo}
}

// Execute fetches the balance.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	bal, err := uc.balanceRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}

	return &GetBalanceOutput{
		CurrentAmount: bal.CurrentAmount,
		UpdatedAt:     bal.UpdatedAt,
	}, nil
}
