package httpserver

import (
	"errors"
	"net/http"

	"legal-catalog/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Store
// failures are logged and surfaced as an opaque 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
