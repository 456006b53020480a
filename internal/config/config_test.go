package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outstanding/internal/config"
	"github.com/arthur-debert/outstanding/pkg/errors"
)

// isolate points the XDG config home at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Cleanups run last-in first-out, so the reload sees the restored value.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Output:      "auto",
		Width:       0,
		UnknownTags: "passthrough",
		ColorMode:   "auto",
		Separator:   "  ",
		Theme:       "",
		Ellipsis:    "…",
	}, cfg)
}

func TestLoadLayers(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "outstanding", "config.toml"), `
output = "text"
width = 100
separator = " | "
`)

	t.Run("user file", func(t *testing.T) {
		cfg, err := config.Load(config.Options{})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, " | ", cfg.Separator)
		assert.Equal(t, "auto", cfg.ColorMode)
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Setenv("OUTSTANDING_WIDTH", "72")
		t.Setenv("OUTSTANDING_UNKNOWN_TAGS", "strip")
		cfg, err := config.Load(config.Options{})
		require.NoError(t, err)
		assert.Equal(t, 72, cfg.Width)
		assert.Equal(t, "strip", cfg.UnknownTags)
		assert.Equal(t, "text", cfg.Output)
	})

	t.Run("overrides beat environment", func(t *testing.T) {
		t.Setenv("OUTSTANDING_OUTPUT", "term")
		cfg, err := config.Load(config.Options{Overrides: map[string]interface{}{"output": "term-debug"}})
		require.NoError(t, err)
		assert.Equal(t, "term-debug", cfg.Output)
	})
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `color_mode = "light"`)

	cfg, err := config.Load(config.Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.ColorMode)

	_, err = config.Load(config.Options{Path: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
		key     string
	}{
		{"bad toml", `output = `, errors.ErrConfigParse, ""},
		{"bad output", `output = "html"`, errors.ErrConfigValid, "output"},
		{"negative width", `width = -1`, errors.ErrConfigValid, "width"},
		{"bad policy", `unknown_tags = "keep"`, errors.ErrConfigValid, "unknown_tags"},
		{"bad color mode", `color_mode = "sepia"`, errors.ErrConfigValid, "color_mode"},
		{"long ellipsis", `ellipsis = ".........."`, errors.ErrConfigValid, "ellipsis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.content)

			_, err := config.Load(config.Options{Path: path})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			if tt.key != "" {
				assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "outstanding", "config.toml"), config.DefaultPath())
	assert.Contains(t, config.DefaultContent(), "unknown_tags")
}
