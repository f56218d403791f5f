package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSaveLoadRoundtrip ensures Save followed by Load returns equal settings.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	want := &Config{
		LogLevel:       "debug",
		MetricsAddress: "localhost:9091",
		Sources:        4,
		Tick:           250 * time.Millisecond,
		Classes:        []string{"hvac", "power"},
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestValidateDefaults verifies defaulting of optional fields.
func TestValidateDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Classes: []string{"hvac"}}
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultSources, cfg.Sources)
	require.Equal(t, DefaultTick, cfg.Tick)
}

// TestValidateRejectsBadInput verifies required fields and address checks.
func TestValidateRejectsBadInput(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
	require.Error(t, Validate(&Config{}))
	require.Error(t, Validate(&Config{
		Classes:        []string{"hvac"},
		MetricsAddress: "not an address",
	}))
}

// TestLoadMissingFile verifies a wrapped error for an absent settings file.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
