package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "semgraph.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data_file: from-config.data\nlog_level: warn\n"), 0644))

	opts := &rootOptions{configPath: configPath, dataFile: filepath.Join(dir, "flag.data")}
	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag.data"), cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestOpenStoreInitializes(t *testing.T) {
	opts := &rootOptions{dataFile: filepath.Join(t.TempDir(), "test.data"), logLevel: "error"}
	cfg, err := opts.loadConfig()
	require.NoError(t, err)

	store, _, err := openStore(cfg)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.CreateClass("Vehicle")
	assert.NoError(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	opts := &rootOptions{logLevel: "shouty"}
	_, err := opts.loadConfig()
	assert.Error(t, err)
}
