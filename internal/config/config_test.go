package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingPathReturnsBaseUnchanged(t *testing.T) {
	base := Default()
	cfg, err := Load("", base)
	require.NoError(t, err)
	require.Equal(t, base, cfg)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inetvm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 8\nlog_level: debug\n"), 0o644))

	base := Default()
	cfg, err := Load(path, base)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, base.ArenaCapacity, cfg.ArenaCapacity)
	require.Equal(t, base.LogFormat, cfg.LogFormat)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.Error(t, err)
}

func TestNetConfigAndBudgetProjections(t *testing.T) {
	c := Config{ArenaCapacity: 1024, Workers: 3, MaxWiringDepth: 16, MaxSteps: 500}
	nc := c.NetConfig()
	require.Equal(t, uint64(1024), nc.ArenaCapacity)
	require.Equal(t, 3, nc.Workers)
	require.Equal(t, 16, nc.MaxWiringDepth)
	require.Equal(t, uint64(500), c.Budget().MaxSteps)
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	log := NewLogger(Config{LogLevel: "not-a-level", LogFormat: "text"})
	require.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, isText := log.Formatter.(*logrus.TextFormatter)
	require.True(t, isText)
}

func TestNewLoggerJSONFormat(t *testing.T) {
	log := NewLogger(Config{LogLevel: "warn", LogFormat: "json"})
	require.Equal(t, logrus.WarnLevel, log.GetLevel())
	_, isJSON := log.Formatter.(*logrus.JSONFormatter)
	require.True(t, isJSON)
}
