package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitalis-app/hostmetrics/internal/collector"
	"github.com/vitalis-app/hostmetrics/internal/config"
	"github.com/vitalis-app/hostmetrics/internal/logging"
	"github.com/vitalis-app/hostmetrics/internal/sampler"
	"github.com/vitalis-app/hostmetrics/internal/server"
	"github.com/vitalis-app/hostmetrics/internal/service"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var cli config.CLIOverrides

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the metrics endpoint and the dashboard gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts, cli)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Logging)
			defer logger.Sync()

			logger.Info("Starting hostmetrics",
				zap.String("version", version),
				zap.String("listen", cfg.Server.Addr()),
				zap.Bool("gateway", cfg.Gateway.Enabled))

			run := func(ctx context.Context) error {
				return runServer(ctx, cfg, logger)
			}

			return service.New(logger, run).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cli.Port, "port", 0, "Metrics endpoint port (default 5000)")
	flags.IntVar(&cli.GatewayPort, "gateway-port", 0, "Dashboard gateway port (default 8080)")
	flags.StringVar(&cli.UpstreamURL, "upstream", "", "URL the gateway forwards /api/metrics to")
	flags.StringVar(&cli.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&cli.DisableGateway, "no-gateway", false, "Serve only the metrics endpoint")
	return cmd
}

// runServer starts the metrics endpoint and, when enabled, the gateway.
// It blocks until ctx is cancelled or either listener fails.
func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	registry := collector.NewDefaultRegistry(logger)
	smp := sampler.New(registry, cfg.Collection.Timeout.Duration, logger)
	api := server.New(cfg, smp, logger)

	var gw *server.Gateway
	if cfg.Gateway.Enabled {
		var err error
		gw, err = server.NewGateway(cfg, logger.Named("gateway"))
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.ListenAndServe(ctx)
	})
	if gw != nil {
		g.Go(func() error {
			return gw.ListenAndServe(ctx)
		})
	}

	return g.Wait()
}
