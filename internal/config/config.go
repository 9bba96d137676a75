// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > embedded > defaults.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "10s", "500ms", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all hostmetrics configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	Collection CollectionConfig `yaml:"collection"`
	Poller     PollerConfig     `yaml:"poller"`
	CORS       CORSConfig       `yaml:"cors"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds the metrics endpoint listener settings.
type ServerConfig struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
}

// Addr returns the listen address for the metrics endpoint.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GatewayConfig holds settings for the listener that serves the poller page
// and forwards /api/metrics to the metrics endpoint.
type GatewayConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	UpstreamURL string `yaml:"upstream_url"` // empty means the local metrics endpoint
}

// Addr returns the listen address for the gateway.
func (g GatewayConfig) Addr() string {
	return net.JoinHostPort(g.Host, strconv.Itoa(g.Port))
}

// CollectionConfig holds per-request sampling settings.
type CollectionConfig struct {
	Timeout Duration `yaml:"timeout"`
}

// PollerConfig holds settings for the terminal poller.
type PollerConfig struct {
	URL            string   `yaml:"url"`
	Interval       Duration `yaml:"interval"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

// CORSConfig holds the cross-origin policy of the metrics endpoint.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
		Gateway: GatewayConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    8080,
		},
		Collection: CollectionConfig{
			Timeout: Duration{3 * time.Second},
		},
		Poller: PollerConfig{
			URL:            "http://localhost:8080/api/metrics",
			Interval:       Duration{10 * time.Second},
			RequestTimeout: Duration{5 * time.Second},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// UpstreamURL returns the URL the gateway forwards to.
func (c *Config) UpstreamURL() string {
	if c.Gateway.UpstreamURL != "" {
		return c.Gateway.UpstreamURL
	}
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(c.Server.Port))
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables take highest precedence and override values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// CLIOverrides holds values from command-line flags.
// Zero values are treated as "not set" and skipped.
type CLIOverrides struct {
	Port           int
	GatewayPort    int
	UpstreamURL    string
	LogLevel       string
	DisableGateway bool
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars > external YAML file > embedded bytes > defaults.
//
// An optional configPath argument controls external-file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value → use that path ("" means no external file)
func LoadLayered(cli CLIOverrides, embedded []byte, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	if len(embedded) > 0 {
		if err := yaml.Unmarshal(embedded, cfg); err != nil {
			return nil, fmt.Errorf("parsing embedded config: %w", err)
		}
	}

	var filePath string
	if len(configPath) > 0 {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", filePath, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if cli.Port != 0 {
		cfg.Server.Port = cli.Port
	}
	if cli.GatewayPort != 0 {
		cfg.Gateway.Port = cli.GatewayPort
	}
	if cli.UpstreamURL != "" {
		cfg.Gateway.UpstreamURL = cli.UpstreamURL
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.DisableGateway {
		cfg.Gateway.Enabled = false
	}

	return cfg, nil
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0640)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Malformed numeric values are ignored.
func applyEnvOverrides(cfg *Config) {
	if port, ok := envInt("HM_PORT"); ok {
		cfg.Server.Port = port
	}
	if port, ok := envInt("HM_GATEWAY_PORT"); ok {
		cfg.Gateway.Port = port
	}
	if url := os.Getenv("HM_UPSTREAM_URL"); url != "" {
		cfg.Gateway.UpstreamURL = url
	}
	if level := os.Getenv("HM_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate checks that the configuration can be used to start the server.
func (c *Config) Validate() error {
	if !validPort(c.Server.Port) {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Gateway.Enabled {
		if !validPort(c.Gateway.Port) {
			return fmt.Errorf("gateway port out of range: %d", c.Gateway.Port)
		}
		if c.Gateway.Port == c.Server.Port && c.Gateway.Host == c.Server.Host {
			return fmt.Errorf("gateway and server cannot share %s", c.Server.Addr())
		}
	}
	if c.Collection.Timeout.Duration <= 0 {
		return fmt.Errorf("collection timeout must be positive")
	}
	if c.Poller.Interval.Duration <= 0 {
		return fmt.Errorf("poller interval must be positive")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed CORS origin is required")
	}
	return nil
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}
