// SPDX-License-Identifier: MIT
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linalg.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.Equal(t, FormatText, cfg.Output.Format)
	require.Equal(t, -1, cfg.Output.Precision)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Numeric.TrackSwaps)
	require.NoError(t, cfg.Validate())
}

func TestValidate_ZeroPrecisionIsShortest(t *testing.T) {
	cfg := Default()
	cfg.Output.Precision = 0
	require.NoError(t, cfg.Validate())
	require.Equal(t, -1, cfg.Output.Precision)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "YAML"
precision = 6

[log]
level = "debug"

[numeric]
track_swaps = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, FormatYAML, cfg.Output.Format)
	require.Equal(t, 6, cfg.Output.Precision)
	require.True(t, cfg.Numeric.TrackSwaps)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"bad precision", "[output]\nprecision = -4\n"},
		{"bad level", "[log]\nlevel = \"chatty\"\n"},
		{"unknown key", "[output]\ncolour = true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Load(writeConfig(t, "[output\n"))
	require.ErrorContains(t, err, "failed to parse config")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "config file not found")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Setenv(EnvVar, "")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	t.Setenv(EnvVar, writeConfig(t, "[output]\nformat = \"json\"\n"))
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, FormatJSON, cfg.Output.Format)
}
