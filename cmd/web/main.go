package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickdeliver/quickdeliver/internal/client"
	"github.com/quickdeliver/quickdeliver/internal/web"
	"github.com/quickdeliver/quickdeliver/pkg/config"
	"github.com/quickdeliver/quickdeliver/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.Web.APIBaseURL).
		Msg("starting web frontend")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	api := client.New(cfg.Web.APIBaseURL)
	server := web.NewServer(api, log, cfg.Session)
	app := server.App(cfg.App.Name + "-web")

	go func() {
		if err := app.Listen(cfg.Web.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
