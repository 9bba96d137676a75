package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// RunFunc serves until ctx is cancelled.
type RunFunc func(ctx context.Context) error

// Foreground runs fn with ctx and logs the shutdown reason.
func Foreground(ctx context.Context, logger *zap.Logger, fn RunFunc) error {
	err := fn(ctx)
	if ctx.Err() != nil {
		logger.Info("Received shutdown signal, stopped")
	}
	return err
}

// Interactive runs fn in the foreground until ctx is cancelled or the process
// receives SIGINT or SIGTERM.
func Interactive(ctx context.Context, logger *zap.Logger, fn RunFunc) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Foreground(ctx, logger, fn)
}
