package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/config"
)

func write(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, `
[parse]
continue_on_error = true
jobs = 3

[output]
format = "json"

[cache]
enabled = true
dir = ".mofcache"

[extra]
knob = 1
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.True(t, cfg.Parse.ContinueOnError)
	assert.Equal(t, 3, cfg.Parse.Jobs)
	assert.Equal(t, 100, cfg.Parse.MaxDiagnostics)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.True(t, cfg.Generate.Header)
	assert.Equal(t, 4, cfg.Generate.IndentWidth)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(dir, ".mofcache"), cfg.Cache.Dir)
	assert.Equal(t, p, cfg.Path)
	assert.Contains(t, cfg.Unknown, "extra.knob")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"format", "[output]\nformat = \"xml\"\n"},
		{"trace level", "[trace]\nlevel = \"loud\"\n"},
		{"jobs", "[parse]\njobs = -1\n"},
		{"indent width", "[generate]\nindent_width = 0\n"},
		{"syntax", "[parse\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, t.TempDir(), tt.body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(write(t, t.TempDir(), "[output]\ncolor = \"sometimes\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, root, "[generate]\nheader = false\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := config.Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, config.FileName), path)

	cfg, err := config.Discover(nested)
	require.NoError(t, err)
	assert.False(t, cfg.Generate.Header)
}

func TestDiscoverWithoutFile(t *testing.T) {
	// TempDir lives under the system temp dir, which has no mofc.toml above it
	// on a sane machine.
	_, ok, err := config.Find(t.TempDir())
	require.NoError(t, err)
	if ok {
		t.Skip("a mofc.toml exists above the temp dir")
	}
	cfg, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
