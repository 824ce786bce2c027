package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// cyclicCorpus never dead-ends at order 1, so every walk reaches the maximum line length.
const cyclicCorpus = `the moon is bright and the sea is wide and the moon is high
and the sea is deep and the moon`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testConfig returns a configuration whose files all live under a temp dir.
func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	config := DefaultConfig()
	config.Server.DataDir = dir
	config.Server.CorpusDatabasePath = filepath.Join(dir, "corpus.db")
	config.Server.RandomSeed = 42
	config.Server.LogLevel = "error"
	return config
}

// writeTestConfig stores config as JSON and returns its path.
func writeTestConfig(t *testing.T, config *Config) string {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(config.Server.DataDir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// setupTestApp builds an App on a fresh database and closes it with the test.
func setupTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	if config == nil {
		config = testConfig(t)
	}
	app, err := NewApp(context.Background(), config, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(bytes.NewReader(nil))
	err := cmd.Execute()
	return out.String(), err
}
