// Package main is the entry point for hostmetrics.
// The serve command runs the metrics endpoint and the dashboard gateway;
// the watch command polls an endpoint from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalis-app/hostmetrics/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "hostmetrics",
		Short:        "Serve and watch host metrics snapshots",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to configuration file (default: auto-discover)")

	root.AddCommand(
		newServeCmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "hostmetrics %s\n", version)
			},
		},
	)
	return root
}

// loadConfig layers the embedded defaults, the config file, the environment
// and cli, then validates the result.
func loadConfig(opts *rootOptions, cli config.CLIOverrides) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadLayered(cli, embeddedConfig, opts.configPath)
	} else {
		cfg, err = config.LoadLayered(cli, embeddedConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
