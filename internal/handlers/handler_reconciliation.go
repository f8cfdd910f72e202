package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles HTTP requests for the ledger activity feed.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationService
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(reconciliationService portssvc.ReconciliationService) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: reconciliationService,
	}
}

// listActivity godoc
// @Summary Account activity feed
// @Description Retrieves the posted activity of an account up to a date,
// newest first, with signed amounts for statement pairing
// @Tags reconciliation
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Param   asOf query string false "Cutoff date (YYYY-MM-DD), defaults to today"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListActivityResponse "A page of activity rows"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountCode}/activity [get]
func (h *reconciliationHandler) listActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	var params dto.ListActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ListActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	if !params.AsOf.IsZero() {
		params.AsOf = endOfDay(params.AsOf)
	}

	resp, err := h.reconciliationService.ListGLActivity(c.Request.Context(), accountCode, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list account activity")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getBalance godoc
// @Summary Account ledger balance
// @Description Computes the account's balance as of a date, signed by its normal balance
// @Tags reconciliation
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Param   asOf query string false "Cutoff date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.GLBalanceResponse "The balance"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountCode}/balance [get]
func (h *reconciliationHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	asOf, ok := parseDateParam(c, "asOf")
	if !ok {
		return
	}

	balance, err := h.reconciliationService.GLBalance(c.Request.Context(), accountCode, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute account balance")
		return
	}

	c.JSON(http.StatusOK, dto.GLBalanceResponse{
		AccountCode: accountCode,
		AsOf:        asOf.Format("2006-01-02"),
		Balance:     balance,
	})
}

// registerReconciliationRoutes registers activity feed routes under accounts
func registerReconciliationRoutes(group *gin.RouterGroup, reconciliationService portssvc.ReconciliationService) {
	handler := newReconciliationHandler(reconciliationService)

	group.GET("/accounts/:accountCode/activity", handler.listActivity)
	group.GET("/accounts/:accountCode/balance", handler.getBalance)
}
