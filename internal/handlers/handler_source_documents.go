package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/ledger-engine/internal/core/ports/services"
	"github.com/finbooks/ledger-engine/internal/dto"
	"github.com/finbooks/ledger-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sourceDocumentHandler handles HTTP requests for sale and vendor invoice intake.
type sourceDocumentHandler struct {
	sourceDocumentService portssvc.SourceDocumentSvc
}

// newSourceDocumentHandler creates a new sourceDocumentHandler.
func newSourceDocumentHandler(sourceDocumentService portssvc.SourceDocumentSvc) *sourceDocumentHandler {
	return &sourceDocumentHandler{
		sourceDocumentService: sourceDocumentService,
	}
}

// registerSale godoc
// @Summary Register a sale
// @Description Records a sale so it can later be posted to the ledger
// @Tags source-documents
// @Accept  json
// @Produce  json
// @Param   sale body dto.RegisterSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse "The registered sale"
// @Failure 409 {object} map[string]string "Invoice number already registered"
// @Router /sales [post]
func (h *sourceDocumentHandler) registerSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RegisterSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sale, err := h.sourceDocumentService.RegisterSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Description Retrieves a registered sale by its ID
// @Tags source-documents
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse "The sale"
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID} [get]
func (h *sourceDocumentHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.sourceDocumentService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// registerVendorInvoice godoc
// @Summary Register a vendor invoice
// @Description Records a payable invoice so payments can be posted against it
// @Tags source-documents
// @Accept  json
// @Produce  json
// @Param   invoice body dto.RegisterVendorInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.VendorInvoiceResponse "The registered invoice"
// @Failure 409 {object} map[string]string "Invoice number already registered"
// @Router /vendor-invoices [post]
func (h *sourceDocumentHandler) registerVendorInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterVendorInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RegisterVendorInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.sourceDocumentService.RegisterVendorInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register vendor invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorInvoiceResponse(invoice))
}

// getVendorInvoice godoc
// @Summary Get a vendor invoice
// @Description Retrieves a registered vendor invoice with its outstanding balance
// @Tags source-documents
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.VendorInvoiceResponse "The invoice"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /vendor-invoices/{invoiceID} [get]
func (h *sourceDocumentHandler) getVendorInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	invoice, err := h.sourceDocumentService.GetVendorInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve vendor invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorInvoiceResponse(invoice))
}

// registerSourceDocumentRoutes registers sale and vendor invoice intake routes
func registerSourceDocumentRoutes(group *gin.RouterGroup, sourceDocumentService portssvc.SourceDocumentSvc) {
	handler := newSourceDocumentHandler(sourceDocumentService)

	sales := group.Group("/sales")
	{
		sales.POST("", handler.registerSale)
		sales.GET("/:saleID", handler.getSale)
	}

	invoices := group.Group("/vendor-invoices")
	{
		invoices.POST("", handler.registerVendorInvoice)
		invoices.GET("/:invoiceID", handler.getVendorInvoice)
	}
}
