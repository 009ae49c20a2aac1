package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		skipMigrate bool
	)
	pflag.StringVarP(&configPath, "config", "c", "", "path to the TOML settings file (default $APP_CONFIG or settings.toml)")
	pflag.BoolVar(&skipMigrate, "skip-migrate", false, "do not apply database migrations on startup")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !skipMigrate {
		if err := database.Migrate(cfg.Database, logger); err != nil {
			return err
		}
	}

	db, err := database.Open(cfg.Database, cfg.Server.Mode, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	state := server.NewAppState(db, logger)
	router := server.NewRouter(ctx, state, cfg.Server)

	return server.New(cfg.Server, router, logger).Run(ctx)
}
