//go:build !windows

// Package service runs the server in the foreground on non-Windows platforms,
// stopping on SIGINT or SIGTERM.
package service

import (
	"context"

	"go.uber.org/zap"
)

// Service runs the server as a foreground process.
type Service struct {
	logger *zap.Logger
	run    RunFunc
}

// New creates a foreground wrapper around run.
func New(logger *zap.Logger, run RunFunc) *Service {
	return &Service{
		logger: logger,
		run:    run,
	}
}

// IsWindowsService always returns false on non-Windows platforms.
func IsWindowsService() bool {
	return false
}

// Run executes run until ctx is cancelled or a termination signal arrives.
func (s *Service) Run(ctx context.Context) error {
	return Interactive(ctx, s.logger, s.run)
}
