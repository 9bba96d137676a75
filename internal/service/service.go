//go:build windows

// Package service provides Windows Service integration.
// When running as a Windows service, the server enters the SCM control loop.
// When running from a terminal, it runs in the foreground.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/windows/svc"
)

const (
	serviceName = "HostMetrics"

	// stopTimeout bounds how long the SCM waits for listeners to drain.
	stopTimeout = 10 * time.Second
)

// Service implements the Windows service interface (svc.Handler).
type Service struct {
	logger *zap.Logger
	run    RunFunc
}

// New creates a new Windows service wrapper around run.
func New(logger *zap.Logger, run RunFunc) *Service {
	return &Service{
		logger: logger,
		run:    run,
	}
}

// IsWindowsService checks if the process is running as a Windows service.
func IsWindowsService() bool {
	isService, err := svc.IsWindowsService()
	if err != nil {
		return false
	}
	return isService
}

// Run starts the Windows service control loop when launched by the SCM and
// runs in the foreground otherwise.
func (s *Service) Run(ctx context.Context) error {
	if !IsWindowsService() {
		return Interactive(ctx, s.logger, s.run)
	}
	s.logger.Info("Running as Windows service")
	return svc.Run(serviceName, s)
}

// Execute implements the svc.Handler interface. It runs the server until the
// SCM asks it to stop, then waits for the listeners to shut down.
func (s *Service) Execute(args []string, r <-chan svc.ChangeRequest, changes chan<- svc.Status) (ssec bool, errno uint32) {
	changes <- svc.Status{State: svc.StartPending}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	changes <- svc.Status{
		State:   svc.Running,
		Accepts: svc.AcceptStop | svc.AcceptShutdown,
	}
	s.logger.Info("Windows service started")

	for {
		select {
		case err := <-done:
			if err != nil {
				s.logger.Error("Server exited", zap.Error(err))
				return false, 1
			}
			return false, 0
		case c := <-r:
			switch c.Cmd {
			case svc.Interrogate:
				changes <- c.CurrentStatus
			case svc.Stop, svc.Shutdown:
				s.logger.Info("Windows service stopping")
				changes <- svc.Status{State: svc.StopPending}
				cancel()
				select {
				case <-done:
				case <-time.After(stopTimeout):
					s.logger.Warn("Server did not stop in time")
				}
				return false, 0
			default:
				s.logger.Warn("Unexpected service control request",
					zap.Uint32("cmd", uint32(c.Cmd)))
			}
		}
	}
}
