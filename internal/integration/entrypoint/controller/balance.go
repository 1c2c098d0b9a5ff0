// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/balance"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles balance endpoints.
type BalanceController struct {
	getUseCase *balance.GetBalanceUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(getUseCase *balance.GetBalanceUseCase) *BalanceController {
	return &BalanceController{getUseCase: getUseCase}
}

// Get handles GET /balance requests.
func (c *BalanceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), balance.GetBalanceInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output))
}
