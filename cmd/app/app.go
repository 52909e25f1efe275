package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/training-calendar-api/internal/api"
	"github.com/vietanh2810/training-calendar-api/internal/config"
	"github.com/vietanh2810/training-calendar-api/internal/db"
	"github.com/vietanh2810/training-calendar-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := api.NewServer(conf, postgresDB)

	if err = s.SeedCategories(ctx); err != nil {
		return fmt.Errorf("failed to seed categories -> %w", err)
	}

	go s.Blacklist.Run(ctx, conf.API.BlacklistCleanupInterval)

	httpServer := &http.Server{
		Addr:    ":" + conf.API.Port,
		Handler: s.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		zap.L().Info("shutdown signal received")
	case err = <-errCh:
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return shutdown(httpServer, postgresDB, conf)
}

func shutdown(httpServer *http.Server, postgresDB *gorm.DB, conf *config.AppConfig) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.API.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}
	zap.L().Info("http server stopped")

	sqlDB, err := postgresDB.DB()
	if err != nil {
		return fmt.Errorf("postgresDB.DB -> %w", err)
	}
	if err = sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database -> %w", err)
	}
	zap.L().Info("database connection closed")

	return nil
}
