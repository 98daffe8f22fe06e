package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/demoforums/forum-api/internal/api"
	"github.com/demoforums/forum-api/internal/infrastructure/db/memory"
	"github.com/demoforums/forum-api/internal/pkg/config"
	"github.com/demoforums/forum-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	store := memory.NewStore()
	memory.Seed(store, cfg.DataSeed)

	e := api.NewRouter(store, api.RouterConfig{
		SecureCookies: cfg.Production(),
		CORSOrigins:   cfg.CORSOrigins,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("forum api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
