package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vitalis-app/hostmetrics/internal/config"
	"github.com/vitalis-app/hostmetrics/internal/logging"
	"github.com/vitalis-app/hostmetrics/internal/poller"
)

type watchOptions struct {
	url      string
	interval time.Duration
	noClear  bool
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var wo watchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a metrics endpoint and print each snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts, config.CLIOverrides{})
			if err != nil {
				return err
			}
			if wo.url == "" {
				wo.url = cfg.Poller.URL
			}
			if wo.interval <= 0 {
				wo.interval = cfg.Poller.Interval.Duration
			}

			// Diagnostics go to stderr so they survive screen clears.
			logger := logging.NewWithConsole(cfg.Logging, zapcore.Lock(os.Stderr))
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Debug("Watching metrics",
				zap.String("url", wo.url),
				zap.Duration("interval", wo.interval))

			display := poller.NewWriterDisplay(cmd.OutOrStdout(), !wo.noClear)
			p := poller.New(wo.url, wo.interval, cfg.Poller.RequestTimeout.Duration, display, logger)
			p.Run(ctx)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&wo.url, "url", "", "Metrics URL (default from config: http://localhost:8080/api/metrics)")
	flags.DurationVar(&wo.interval, "interval", 0, "Polling interval (default 10s)")
	flags.BoolVar(&wo.noClear, "no-clear", false, "Append snapshots instead of redrawing the screen")
	return cmd
}
