package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-app/hostmetrics/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "hostmetrics dev\n", execute(t, "version"))
}

func TestConfigShow_AppliesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 5123\n"), 0600))

	out := execute(t, "--config", path, "config", "show")
	assert.Contains(t, out, "port: 5123")
	assert.Contains(t, out, "interval: 10s")
}

func TestConfigWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "config.yaml")

	execute(t, "--config", filepath.Join(dir, "missing.yaml"), "config", "write", target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "allowed_origins")
}

func TestConfigWrite_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(source, []byte("server:\n  port: 5123\npoller:\n  interval: 30s\n"), 0600))
	target := filepath.Join(dir, "copy.yaml")

	out := execute(t, "--config", source, "config", "write", target)
	assert.Equal(t, "wrote "+target+"\n", out)

	loaded, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, 5123, loaded.Server.Port)
	assert.Equal(t, 30*time.Second, loaded.Poller.Interval.Duration)
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\n"), 0600))

	_, err := loadConfig(&rootOptions{configPath: path}, config.CLIOverrides{})
	assert.ErrorContains(t, err, "server port")
}
