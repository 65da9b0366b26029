package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/pkg/config"
	"github.com/nextup-mentor/nextup-api/pkg/database"
	"github.com/nextup-mentor/nextup-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := database.Migrate(ctx, db, logr)
	if err != nil {
		logr.Fatal("migration failed", zap.Strings("applied", applied), zap.Error(err))
	}
	if len(applied) == 0 {
		logr.Info("schema up to date")
		return
	}
	logr.Info("migrations complete", zap.Strings("applied", applied))
}
