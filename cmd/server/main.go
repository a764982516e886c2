package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parlevel/stocktake-api/internal/api"
	"github.com/parlevel/stocktake-api/internal/infrastructure/artifact"
	"github.com/parlevel/stocktake-api/internal/infrastructure/config"
	redisdb "github.com/parlevel/stocktake-api/internal/infrastructure/db/redis"
	"github.com/parlevel/stocktake-api/internal/infrastructure/db/sqlite"
	"github.com/parlevel/stocktake-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("failed to open database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	artifacts, err := artifact.NewStore(cfg.DownloadsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DownloadsDir).Msg("failed to prepare downloads dir")
	}

	e, err := api.NewRouter(cfg, db, rdb, artifacts, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("stocktake api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
