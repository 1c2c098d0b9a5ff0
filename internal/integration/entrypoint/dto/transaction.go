// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"omitempty,max=255"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"omitempty,max=255"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	Type        string                       `json:"type"`
	Amount      string                       `json:"amount"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TypeSummaryResponse represents per-type totals in the summary response.
type TypeSummaryResponse struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

// TransactionSummaryResponse represents the ledger summary response.
type TransactionSummaryResponse struct {
	Income  TypeSummaryResponse `json:"income"`
	Expense TypeSummaryResponse `json:"expense"`
	Net     string              `json:"net"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		Amount:      txn.Amount.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.CategoryID != nil {
		categoryID := txn.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
			Icon:  txn.Category.Icon,
		}
	}
	return response
}

// ToTransactionListResponse converts transaction outputs to a list response.
func ToTransactionListResponse(txns []*transaction.TransactionOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txns)),
	}
	for _, txn := range txns {
		response.Transactions = append(response.Transactions, ToTransactionResponse(txn))
	}
	return response
}

// ToTransactionSummaryResponse converts a summary output to its response DTO.
func ToTransactionSummaryResponse(summary *transaction.TransactionSummaryOutput) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		Income: TypeSummaryResponse{
			Count: summary.Income.Count,
			Total: summary.Income.Total.String(),
		},
		Expense: TypeSummaryResponse{
			Count: summary.Expense.Count,
			Total: summary.Expense.Total.String(),
		},
		Net: summary.Net.String(),
	}
}
