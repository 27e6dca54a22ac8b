package main

import (
	"context"
	"flag"
	"os"

	"legal-catalog/internal/config"
	"legal-catalog/internal/db"
	"legal-catalog/internal/importer"
	"legal-catalog/internal/logger"
	categoryrepo "legal-catalog/internal/repository/category"
	documentrepo "legal-catalog/internal/repository/document"

	"go.uber.org/zap"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON export of legal documents")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()

	log, err := logger.New(cfg)
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal("open file", zap.String("path", filePath), zap.Error(err))
	}
	defer f.Close()

	imp := importer.NewJSONImporter(f,
		categoryrepo.NewPostgres(pool, log),
		documentrepo.NewPostgres(pool, log),
	)
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	log.Info("import finished", zap.Int("imported", count))
}
