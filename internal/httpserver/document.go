package httpserver

import (
	"net/http"
	"time"

	"legal-catalog/internal/domain"
	documentsvc "legal-catalog/internal/service/document"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createDocumentRequest struct {
	TitleID         string     `json:"title_id"`
	TitleEN         string     `json:"title_en"`
	ContentID       string     `json:"content_id"`
	ContentEN       string     `json:"content_en"`
	SummaryID       *string    `json:"summary_id"`
	SummaryEN       *string    `json:"summary_en"`
	DocumentType    string     `json:"document_type"`
	CategoryID      int        `json:"category_id"`
	DocumentNumber  *string    `json:"document_number"`
	PublicationDate *time.Time `json:"publication_date"`
	EffectiveDate   *time.Time `json:"effective_date"`
	Tags            []string   `json:"tags"`
	FileURL         *string    `json:"file_url"`
	IsPublished     bool       `json:"is_published"`
}

func createDocument(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		doc, err := svc.Create(c.Request.Context(), documentsvc.CreateInput{
			TitleID:         req.TitleID,
			TitleEN:         req.TitleEN,
			ContentID:       req.ContentID,
			ContentEN:       req.ContentEN,
			SummaryID:       req.SummaryID,
			SummaryEN:       req.SummaryEN,
			DocumentType:    domain.DocumentType(req.DocumentType),
			CategoryID:      req.CategoryID,
			DocumentNumber:  req.DocumentNumber,
			PublicationDate: req.PublicationDate,
			EffectiveDate:   req.EffectiveDate,
			Tags:            req.Tags,
			FileURL:         req.FileURL,
			IsPublished:     req.IsPublished,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, doc)
	}
}

func getDocument(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		lang, ok := queryLanguage(c)
		if !ok {
			return
		}
		doc, err := svc.Get(c.Request.Context(), id, lang)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func updateDocument(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var patch domain.DocumentPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		doc, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func deleteDocument(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		deleted, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}

func listDocumentsByCategory(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		lang, ok := queryLanguage(c)
		if !ok {
			return
		}
		docs, err := svc.ListByCategory(c.Request.Context(), id, lang)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func listDocumentsByType(svc *documentsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dt, err := domain.ParseDocumentType(c.Param("type"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		lang, ok := queryLanguage(c)
		if !ok {
			return
		}
		docs, err := svc.ListByType(c.Request.Context(), dt, lang)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func queryLanguage(c *gin.Context) (domain.Language, bool) {
	lang, err := domain.ParseLanguage(c.Query("language"))
	if err != nil {
		badRequest(c, err.Error())
		return "", false
	}
	return lang, true
}
