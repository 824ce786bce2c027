package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CTAG07/Verseseed/pkg/verse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoemCommand(t *testing.T) {
	configPath := writeTestConfig(t, testConfig(t))

	t.Run("Thematic word", func(t *testing.T) {
		out, err := runCLI(t, "--config", configPath, "poem", "--word", "moon", "--plain")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 5, "title and four lines")
		assert.Equal(t, "moon", strings.TrimSpace(lines[0]))
	})

	t.Run("Seed text", func(t *testing.T) {
		out, err := runCLI(t, "--config", configPath, "poem", "--seed", chainSeed, "--plain")
		require.NoError(t, err)
		assert.Contains(t, out, "from your seed text")
	})

	t.Run("Diagnostic exits with an error", func(t *testing.T) {
		out, err := runCLI(t, "--config", configPath, "poem", "--word", "ab", "--plain")
		assert.ErrorIs(t, err, errPoemRefused)
		assert.Equal(t, verse.MsgLongerWord, strings.TrimSpace(out))
	})

	t.Run("Needs input", func(t *testing.T) {
		_, err := runCLI(t, "--config", configPath, "poem")
		assert.Error(t, err)
	})

	t.Run("Unknown strategy", func(t *testing.T) {
		_, err := runCLI(t, "--config", configPath, "poem", "--word", "moon", "--strategy", "sonnet")
		assert.Error(t, err)
	})

	t.Run("Unknown corpus model", func(t *testing.T) {
		_, err := runCLI(t, "--config", configPath, "poem", "--corpus", "missing", "--word", "moon")
		assert.Error(t, err)
	})
}

func TestCorpusCommands(t *testing.T) {
	config := testConfig(t)
	configPath := writeTestConfig(t, config)
	dir := config.Server.DataDir

	corpusPath := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpusPath, []byte(cyclicCorpus+"\n\nthe sea is wide and the moon is bright\n"), 0644))

	out, err := runCLI(t, "--config", configPath, "train", "verse", corpusPath, "--order", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created model verse (order 1)")

	_, err = runCLI(t, "--config", configPath, "train", "verse", corpusPath, "--order", "3")
	assert.Error(t, err, "order of an existing model cannot change")

	out, err = runCLI(t, "--config", configPath, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "verse")

	out, err = runCLI(t, "--config", configPath, "poem", "--corpus", "verse", "--word", "moon", "--plain")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)

	exportPath := filepath.Join(dir, "verse.json")
	out, err = runCLI(t, "--config", configPath, "export", "verse", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported verse")
	assert.FileExists(t, exportPath)

	out, err = runCLI(t, "--config", configPath, "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported verse (order 1)")

	out, err = runCLI(t, "--config", configPath, "prune", "verse", "--min-freq", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 chains from verse")

	_, err = runCLI(t, "--config", configPath, "prune")
	assert.Error(t, err)

	out, err = runCLI(t, "--config", configPath, "prune", "--vocabulary", "--min-freq", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Pruned vocabulary")
}

func TestModelsCommandEmpty(t *testing.T) {
	configPath := writeTestConfig(t, testConfig(t))
	out, err := runCLI(t, "--config", configPath, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "No corpus models stored.")
}

func TestLogLevelFlagIsValidated(t *testing.T) {
	configPath := writeTestConfig(t, testConfig(t))
	_, err := runCLI(t, "--config", configPath, "--log-level", "loud", "models")
	assert.Error(t, err)
}
