package main

import (
	"context"

	"legal-catalog/internal/config"
	"legal-catalog/internal/db"
	"legal-catalog/internal/logger"
	"legal-catalog/internal/migrate"

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
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	log.Info("migrations applied")
}
