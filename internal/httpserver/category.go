package httpserver

import (
	"net/http"
	"strconv"

	"legal-catalog/internal/domain"
	categorysvc "legal-catalog/internal/service/category"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createCategoryRequest struct {
	NameID        string  `json:"name_id"`
	NameEN        string  `json:"name_en"`
	DescriptionID *string `json:"description_id"`
	DescriptionEN *string `json:"description_en"`
}

func createCategory(svc *categorysvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		cat, err := svc.Create(c.Request.Context(), categorysvc.CreateInput{
			NameID:        req.NameID,
			NameEN:        req.NameEN,
			DescriptionID: req.DescriptionID,
			DescriptionEN: req.DescriptionEN,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func listCategories(svc *categorysvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if cats == nil {
			cats = []domain.Category{}
		}
		c.JSON(http.StatusOK, cats)
	}
}

func updateCategory(svc *categorysvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var patch domain.CategoryPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		cat, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func deleteCategory(svc *categorysvc.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
