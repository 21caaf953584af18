package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, uint64(192382), cfg.Seed)
	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 9, cfg.Cols)
	assert.Equal(t, 16, cfg.BatchSize)
	assert.Equal(t, 1.0, cfg.LearningRate)
	assert.Equal(t, 60, cfg.MaxSteps)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`
seed: 7
rows: 11
cols: 13
start: [1, 1]
goal: [9, 11]
batchSize: 32
learningRate: 0.25
`)
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 11, cfg.Rows)
	assert.Equal(t, 13, cfg.Cols)
	assert.Equal(t, [2]int{9, 11}, cfg.Goal)
	assert.Equal(t, 32, cfg.BatchSize)
	assert.Equal(t, 0.25, cfg.LearningRate)

	// Unset keys keep their defaults
	assert.Equal(t, 60, cfg.MaxSteps)
	assert.Equal(t, 50, cfg.NEval)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run_config.yaml")

	cfg, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	cfg.Seed = 99
	cfg.Rows = 7

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
