package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/categories", createCategory(deps.CategorySvc, logger))
	router.GET("/categories", listCategories(deps.CategorySvc, logger))
	router.PATCH("/categories/:id", updateCategory(deps.CategorySvc, logger))
	router.DELETE("/categories/:id", deleteCategory(deps.CategorySvc, logger))
	router.GET("/categories/:id/documents", listDocumentsByCategory(deps.DocumentSvc, logger))

	router.POST("/documents", createDocument(deps.DocumentSvc, logger))
	router.GET("/documents/:id", getDocument(deps.DocumentSvc, logger))
	router.PATCH("/documents/:id", updateDocument(deps.DocumentSvc, logger))
	router.DELETE("/documents/:id", deleteDocument(deps.DocumentSvc, logger))
	router.GET("/documents/type/:type", listDocumentsByType(deps.DocumentSvc, logger))

	router.POST("/search", searchDocuments(deps.SearchSvc, logger))

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
