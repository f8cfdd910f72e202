package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/services"
	"github.com/finbooks/ledger-engine/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service errors into HTTP responses.
// Validation failures return 400, missing resources 404, duplicate or
// conflicting postings 409, and everything else a generic 500 so internal
// details never leak to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, accounting.ErrUnbalanced),
		errors.Is(err, accounting.ErrEmptyEntry),
		errors.Is(err, accounting.ErrSingleAccount),
		errors.Is(err, accounting.ErrMalformedLine),
		errors.Is(err, services.ErrUnknownAccount),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrDuplicatePosting),
		errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrPaymentExceedsBalance),
		errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
