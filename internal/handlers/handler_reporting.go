package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// endOfDay pushes a date-only cutoff to the last instant of that day so
// entries with an intraday timestamp on the cutoff day fall inside
// entry_date <= cutoff.
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}

// parseDateParam parses a YYYY-MM-DD query parameter into an end-of-day
// cutoff, defaulting to now when absent.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now().UTC(), true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return endOfDay(parsed), true
}

// getTrialBalance godoc
// @Summary Trial balance report
// @Description Retrieves per-account debit and credit totals as of a date
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse "The trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateParam(c, "asOf")
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOf))
}

// getIncomeStatement godoc
// @Summary Income statement report
// @Description Retrieves revenue and expense balances with net income for a period
// @Tags reports
// @Produce  json
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.IncomeStatementResponse "The income statement"
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var from time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate income statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report, from, to))
}

// getBalanceSheet godoc
// @Summary Balance sheet report
// @Description Retrieves asset, liability and equity balances as of a date,
// with current-period net income folded into equity
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse "The balance sheet"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateParam(c, "asOf")
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	if report.IntegrityWarning != "" {
		logger.Warn("Balance sheet integrity warning", slog.String("warning", report.IntegrityWarning))
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// registerReportingRoutes registers financial report routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingService) {
	handler := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", handler.getTrialBalance)
		reports.GET("/income-statement", handler.getIncomeStatement)
		reports.GET("/balance-sheet", handler.getBalanceSheet)
	}
}
