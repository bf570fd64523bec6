package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life3d/internal/app"
	"life3d/internal/config"
	"life3d/internal/sims/life3d"
	"life3d/internal/telemetry"
)

func TestRunWritesCensusAndConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Grid = config.GridConfig{X: 6, Y: 6, Z: 6}
	cfg.Rules.Density = 0.3
	cfg.Sim.Seed = 5
	cfg.Sim.Workers = 2
	cfg.Telemetry.OutputDir = dir
	cfg.Telemetry.LogEvery = 2

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	require.NoError(t, run(life3d.Name, cfg, 4, logger))

	f, err := os.Open(filepath.Join(dir, telemetry.CensusFile))
	require.NoError(t, err)
	defer f.Close()
	records, err := telemetry.ReadCSV(f)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, r := range records {
		assert.Equal(t, i, r.Generation)
	}

	saved, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.Sim.Seed)
	assert.Equal(t, cfg.Grid, saved.Grid)

	assert.Contains(t, logs.String(), `"msg":"run complete"`)
	assert.Contains(t, logs.String(), `"msg":"progress"`)
}

func TestRunIsReproducible(t *testing.T) {
	census := func() []telemetry.Record {
		dir := t.TempDir()
		f := app.NewFlags()
		f.Seed = 77
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))
		cfg, err := app.LoadConfig(f, []string{"0.2", "2", "6", "3"}, logger)
		require.NoError(t, err)
		cfg.Grid = config.GridConfig{X: 8, Y: 7, Z: 6}
		cfg.Telemetry.OutputDir = dir
		require.NoError(t, run(f.Sim, cfg, 3, logger))

		fh, err := os.Open(filepath.Join(dir, telemetry.CensusFile))
		require.NoError(t, err)
		defer fh.Close()
		records, err := telemetry.ReadCSV(fh)
		require.NoError(t, err)
		return records
	}
	assert.Equal(t, census(), census())
}

func TestRunRejectsUnknownSim(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	err = run("life2d", cfg, 1, slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, app.ErrUsage)
}

func TestRunRejectsNegativeGenerations(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	err = run(life3d.Name, cfg, -1, slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "non-negative")
}
