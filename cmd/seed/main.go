package main

import (
	"context"

	"legal-catalog/internal/config"
	"legal-catalog/internal/db"
	"legal-catalog/internal/logger"
	"legal-catalog/internal/seed"

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

	if err := seed.Apply(ctx, pool); err != nil {
		log.Fatal("seed apply", zap.Error(err))
	}

	log.Info("seed applied")
}
