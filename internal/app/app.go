package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/dailydiet-backend/internal/config"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens storage and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
	)

	srv, err := NewServer(ctx, *cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
