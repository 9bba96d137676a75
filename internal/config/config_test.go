package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadLayered_CLIOverridesEverything(t *testing.T) {
	embedded := []byte("server:\n  port: 6000\nlogging:\n  level: warn")
	t.Setenv("HM_PORT", "7000")
	cli := CLIOverrides{Port: 8000, LogLevel: "debug"}

	cfg, err := LoadLayered(cli, embedded, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Port = %d, want CLI override", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want CLI override", cfg.Logging.Level)
	}
}

func TestLoadLayered_EnvOverridesEmbed(t *testing.T) {
	embedded := []byte("server:\n  port: 6000\ngateway:\n  port: 6001")
	t.Setenv("HM_PORT", "7000")

	cfg, err := LoadLayered(CLIOverrides{}, embedded, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Port = %d, want env override", cfg.Server.Port)
	}
	if cfg.Gateway.Port != 6001 {
		t.Errorf("Gateway port = %d, want embedded value", cfg.Gateway.Port)
	}
}

func TestLoadLayered_FileOverridesEmbed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("poller:\n  interval: 30s"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(CLIOverrides{}, []byte("poller:\n  interval: 20s"), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Poller.Interval.Duration != 30*time.Second {
		t.Errorf("Interval = %v, want file value", cfg.Poller.Interval.Duration)
	}
}

func TestLoadLayered_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("HM_PORT", "not-a-port")

	cfg, err := LoadLayered(CLIOverrides{}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadLayered_DefaultsWhenEmpty(t *testing.T) {
	cfg, err := LoadLayered(CLIOverrides{}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Port = %d, want 5000 default", cfg.Server.Port)
	}
	if cfg.Poller.Interval.Duration.Seconds() != 10 {
		t.Errorf("Interval = %v, want 10s default", cfg.Poller.Interval.Duration)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadLayered_DisableGateway(t *testing.T) {
	cfg, err := LoadLayered(CLIOverrides{DisableGateway: true}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gateway.Enabled {
		t.Error("gateway should be disabled")
	}
}

func TestLoadFromBytes_InvalidDuration(t *testing.T) {
	if _, err := LoadFromBytes([]byte("collection:\n  timeout: soon")); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestUpstreamURL(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.UpstreamURL(); got != "http://127.0.0.1:5000" {
		t.Errorf("UpstreamURL() = %q", got)
	}
	cfg.Gateway.UpstreamURL = "http://backend:5000"
	if got := cfg.UpstreamURL(); got != "http://backend:5000" {
		t.Errorf("UpstreamURL() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"server port", func(c *Config) { c.Server.Port = 0 }},
		{"gateway port", func(c *Config) { c.Gateway.Port = 70000 }},
		{"shared port", func(c *Config) { c.Gateway.Port = c.Server.Port }},
		{"collection timeout", func(c *Config) { c.Collection.Timeout.Duration = 0 }},
		{"poller interval", func(c *Config) { c.Poller.Interval.Duration = -time.Second }},
		{"origins", func(c *Config) { c.CORS.AllowedOrigins = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWriteConfig_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Port = 5050

	if err := WriteConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 5050 {
		t.Errorf("Port = %d, want 5050", loaded.Server.Port)
	}
	if loaded.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", loaded.Server.ReadTimeout.Duration)
	}
}
