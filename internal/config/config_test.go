package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Decode.ExtractImagesOnly)
	assert.False(t, cfg.Decode.SimpleSorting)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comic-enc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
decode:
  extract_images_only: false
  skip_bad_pdf_pages: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Decode.ExtractImagesOnly)
	assert.True(t, cfg.Decode.SkipBadPDFPages)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COMIC_ENC_LOG_LEVEL", "trace")
	t.Setenv("COMIC_ENC_SIMPLE_SORTING", "true")
	t.Setenv("COMIC_ENC_EXTRACT_IMAGES_ONLY", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Log.Level)
	assert.True(t, cfg.Decode.SimpleSorting)
	assert.False(t, cfg.Decode.ExtractImagesOnly)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
