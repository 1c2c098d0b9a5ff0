// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/expense"
)

// ExpenseResponse represents a single expense in aggregation responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// CategoryStatsResponse represents one category group in the stats response.
type CategoryStatsResponse struct {
	Category     string            `json:"category"`
	Sum          string            `json:"sum"`
	Count        int               `json:"count"`
	Transactions []ExpenseResponse `json:"transactions"`
}

// StatsPeriodResponse echoes the month/year filter applied to the
// statistics. Null fields mean that dimension was unfiltered.
type StatsPeriodResponse struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// ExpenseStatsResponse represents the expense statistics response.
type ExpenseStatsResponse struct {
	Categories []CategoryStatsResponse `json:"categories"`
	Total      string                  `json:"total"`
	Period     StatsPeriodResponse     `json:"period"`
}

// MonthResponse represents one month with recorded expenses.
// Month is zero-indexed: January is 0.
type MonthResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// AvailableMonthsResponse represents the response for the month listing.
type AvailableMonthsResponse struct {
	Months []MonthResponse `json:"months"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Category:    e.Category,
	}
}

// ToExpenseListResponse converts expense outputs to a list response.
func ToExpenseListResponse(expenses []*expense.ExpenseOutput) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(expenses)),
	}
	for _, e := range expenses {
		response.Expenses = append(response.Expenses, ToExpenseResponse(e))
	}
	return response
}

// ToExpenseStatsResponse converts a stats output to its response DTO.
func ToExpenseStatsResponse(stats *expense.ExpenseStatsOutput) ExpenseStatsResponse {
	response := ExpenseStatsResponse{
		Categories: make([]CategoryStatsResponse, 0, len(stats.Categories)),
		Total:      stats.Total.String(),
		Period: StatsPeriodResponse{
			Month: stats.Period.Month,
			Year:  stats.Period.Year,
		},
	}
	for _, group := range stats.Categories {
		groupResponse := CategoryStatsResponse{
			Category:     group.Category,
			Sum:          group.Sum.String(),
			Count:        group.Count,
			Transactions: make([]ExpenseResponse, 0, len(group.Transactions)),
		}
		for _, e := range group.Transactions {
			groupResponse.Transactions = append(groupResponse.Transactions, ToExpenseResponse(e))
		}
		response.Categories = append(response.Categories, groupResponse)
	}
	return response
}

// ToAvailableMonthsResponse converts a months output to its response DTO.
func ToAvailableMonthsResponse(months []expense.MonthOutput) AvailableMonthsResponse {
	response := AvailableMonthsResponse{
		Months: make([]MonthResponse, 0, len(months)),
	}
	for _, m := range months {
		response.Months = append(response.Months, MonthResponse{
			Month: m.Month,
			Year:  m.Year,
		})
	}
	return response
}
