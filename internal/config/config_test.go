package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.CacheDir)
	assert.NotEmpty(t, cfg.ContentDir)
	assert.Greater(t, cfg.Workers, 0)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().CacheDir, cfg.CacheDir)
}

func TestLoad_TOMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swiftdocs.toml")
	content := "cache_dir = \"" + filepath.Join(dir, "cache") + "\"\nworkers = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache"), cfg.CacheDir)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir = [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_CacheOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvCacheDir, dir)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.CacheDir)
}

func TestRoots(t *testing.T) {
	cfg := &Config{CacheDir: "/tmp/cache", ContentDir: "/tmp/content", Workers: 1}

	assert.Equal(t, filepath.Join("/tmp/cache", "apple-docs"), cfg.AppleDocsRoot())
	assert.Equal(t, filepath.Join("/tmp/cache", "hig"), cfg.HIGRoot())
	assert.Equal(t, filepath.Join("/tmp/cache", "swift-book"), cfg.BookRoot())
	assert.Equal(t, filepath.Join("/tmp/cache", "swift-evolution", "proposals"), cfg.EvolutionRoot())
	assert.Equal(t, filepath.Join("/tmp/cache", "index"), cfg.IndexDir())

	patterns := cfg.PatternRoots()
	require.Len(t, patterns, 2)
	assert.Equal(t, filepath.Join("/tmp/content", "patterns"), patterns[0])
	assert.Equal(t, filepath.Join("/tmp/cache", "content", "patterns"), patterns[1])
}

func TestNormalize_WorkersFloor(t *testing.T) {
	cfg := &Config{CacheDir: ".", ContentDir: ".", Workers: -2}
	cfg.normalize()
	assert.Greater(t, cfg.Workers, 0)
	assert.True(t, filepath.IsAbs(cfg.CacheDir))
}
