package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests for the posting engine.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(postingService portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{
		postingService: postingService,
	}
}

// postJournalEntry godoc
// @Summary Post a manual journal entry
// @Description Validates and commits a balanced journal entry with its lines
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostJournalEntryRequest true "Entry and lines"
// @Success 201 {object} dto.EntryResponse "The posted entry"
// @Failure 400 {object} map[string]string "Unbalanced or malformed entry"
// @Failure 409 {object} map[string]string "Reference already posted"
// @Router /journal-entries [post]
func (h *postingHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingService.PostJournalEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines by entry ID
// @Tags postings
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse "The entry with lines"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *postingHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.postingService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a paginated list of entries, newest first
// @Tags postings
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse "A page of entries"
// @Router /journal-entries [get]
func (h *postingHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.postingService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Permanently removes an entry and its lines; prefer a compensating entry
// @Tags postings
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journal-entries/{entryID} [delete]
func (h *postingHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.postingService.DeleteEntry(c.Request.Context(), entryID, requestingUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete journal entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// postSaleInvoice godoc
// @Summary Post a sale invoice
// @Description Posts the revenue-recognition entry for a registered sale
// @Tags postings
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 201 {object} dto.EntryResponse "The posted entry"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Sale already posted"
// @Router /sales/{saleID}/post [post]
func (h *postingHandler) postSaleInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingService.PostSaleInvoice(c.Request.Context(), saleID, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post sale invoice")
		return
	}

	logger.Info("Sale invoice posted",
		slog.String("sale_id", saleID),
		slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// postVendorPayment godoc
// @Summary Post a vendor payment
// @Description Posts a payment entry against a registered vendor invoice
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   payment body dto.PostVendorPaymentRequest true "Payment details"
// @Success 201 {object} dto.EntryResponse "The posted entry"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Duplicate payment reference or overpayment"
// @Router /vendor-payments [post]
func (h *postingHandler) postVendorPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostVendorPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostVendorPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingService.PostVendorPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post vendor payment")
		return
	}

	logger.Info("Vendor payment posted",
		slog.String("invoice_id", req.InvoiceID),
		slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// registerPostingRoutes registers posting engine routes. The write routes
// carry the rate limiting middleware when one is provided.
func registerPostingRoutes(group *gin.RouterGroup, postingService portssvc.PostingSvcFacade, rateLimiter gin.HandlerFunc) {
	handler := newPostingHandler(postingService)

	writeMiddleware := []gin.HandlerFunc{}
	if rateLimiter != nil {
		writeMiddleware = append(writeMiddleware, rateLimiter)
	}

	entries := group.Group("/journal-entries")
	{
		entries.POST("", append(writeMiddleware, handler.postJournalEntry)...)
		entries.GET("", handler.listEntries)
		entries.GET("/:entryID", handler.getEntry)
		entries.DELETE("/:entryID", handler.deleteEntry)
	}

	group.POST("/sales/:saleID/post", append(writeMiddleware, handler.postSaleInvoice)...)
	group.POST("/vendor-payments", append(writeMiddleware, handler.postVendorPayment)...)
}
