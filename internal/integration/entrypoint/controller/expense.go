// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/expense"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense aggregation endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	statsUseCase  *expense.ExpenseStatsUseCase
	monthsUseCase *expense.AvailableMonthsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	statsUseCase *expense.ExpenseStatsUseCase,
	monthsUseCase *expense.AvailableMonthsUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		statsUseCase:  statsUseCase,
		monthsUseCase: monthsUseCase,
	}
}

// List handles GET /expenses requests. Supported query parameters:
// category (label, case-insensitive), month (zero-indexed) and year.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := expense.ListExpensesInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	month, year, ok := parseMonthYear(ctx)
	if !ok {
		return
	}
	input.Month = month
	input.Year = year

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Stats handles GET /expenses/stats requests.
func (c *ExpenseController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := expense.ExpenseStatsInput{UserID: userID}

	month, year, ok := parseMonthYear(ctx)
	if !ok {
		return
	}
	input.Month = month
	input.Year = year

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute expense statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseStatsResponse(output))
}

// Months handles GET /expenses/months requests.
func (c *ExpenseController) Months(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthsUseCase.Execute(ctx.Request.Context(), expense.AvailableMonthsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve available months",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAvailableMonthsResponse(output.Months))
}

// parseMonthYear reads the optional month and year query parameters,
// writing a 400 response and returning false on malformed input.
func parseMonthYear(ctx *gin.Context) (*int, *int, bool) {
	var month, year *int

	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 0 || parsed > 11 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month, expected 0-11",
			})
			return nil, nil, false
		}
		month = &parsed
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return nil, nil, false
		}
		year = &parsed
	}
	return month, year, true
}
