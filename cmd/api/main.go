package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"legal-catalog/internal/config"
	"legal-catalog/internal/db"
	"legal-catalog/internal/httpserver"
	"legal-catalog/internal/logger"
	categoryrepo "legal-catalog/internal/repository/category"
	documentrepo "legal-catalog/internal/repository/document"
	categorysvc "legal-catalog/internal/service/category"
	documentsvc "legal-catalog/internal/service/document"
	searchsvc "legal-catalog/internal/service/search"

	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()

	log, err := logger.New(cfg)
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer log.Sync()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool, log)
	documentRepo := documentrepo.NewPostgres(dbpool, log)

	categoryService := categorysvc.New(categoryRepo, documentRepo)
	documentService := documentsvc.New(documentRepo, categoryRepo)
	searchService := searchsvc.New(documentRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, log, dbpool, httpserver.Deps{
		CategorySvc: categoryService,
		DocumentSvc: documentService,
		SearchSvc:   searchService,
	})
	if err != nil {
		log.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}
