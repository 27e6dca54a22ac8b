package httpserver

import (
	"net/http"

	"legal-catalog/internal/domain"
	searchsvc "legal-catalog/internal/service/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type searchRequest struct {
	Query         string   `json:"query"`
	DocumentType  *string  `json:"document_type"`
	CategoryID    *int     `json:"category_id"`
	Language      string   `json:"language"`
	Tags          []string `json:"tags"`
	PublishedOnly *bool    `json:"published_only"`
	Limit         *int     `json:"limit"`
	Offset        *int     `json:"offset"`
}

// searchDocuments binds the structured search input. Absent fields get the
// documented defaults: language id, published_only true, limit 20, offset 0.
func searchDocuments(svc *searchsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		f := domain.SearchFilter{
			Query:         req.Query,
			CategoryID:    req.CategoryID,
			Language:      domain.Language(req.Language),
			Tags:          req.Tags,
			PublishedOnly: true,
			Limit:         20,
		}
		if req.DocumentType != nil {
			dt, err := domain.ParseDocumentType(*req.DocumentType)
			if err != nil {
				writeError(c, logger, err)
				return
			}
			f.DocumentType = &dt
		}
		if req.PublishedOnly != nil {
			f.PublishedOnly = *req.PublishedOnly
		}
		if req.Limit != nil {
			f.Limit = *req.Limit
		}
		if req.Offset != nil {
			f.Offset = *req.Offset
		}

		results, err := svc.Search(c.Request.Context(), f)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
