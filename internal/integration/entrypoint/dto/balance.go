// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/application/usecase/balance"
)

// BalanceResponse represents the running balance in API responses.
type BalanceResponse struct {
	CurrentAmount string    `json:"current_amount"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToBalanceResponse converts a balance output to its response DTO.
func ToBalanceResponse(b *balance.GetBalanceOutput) BalanceResponse {
	return BalanceResponse{
		CurrentAmount: b.CurrentAmount.String(),
		UpdatedAt:     b.UpdatedAt,
	}
}
