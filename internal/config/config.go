package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized by FromEnv.
const (
	// EnvCacheDir overrides the cache location, e.g. for shared team caches.
	EnvCacheDir = "SWIFTDOCS_CACHE_DIR"
	// EnvConfigFile points at an optional TOML config file.
	EnvConfigFile = "SWIFTDOCS_CONFIG"
)

// Config carries every filesystem root and tunable the builders and the
// search engine need. It is threaded explicitly into each component rather
// than read from process-wide state, so tests can run against arbitrary
// roots.
type Config struct {
	// CacheDir is where mirrored corpora and persisted indexes live.
	CacheDir string `toml:"cache_dir"`

	// ContentDir is the repo-local content root holding curated patterns
	// and recipes that ship alongside the server.
	ContentDir string `toml:"content_dir"`

	// Workers bounds concurrent file parsing during an index build.
	Workers int `toml:"workers"`
}

// Default returns a config rooted at the current working directory.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		CacheDir:   filepath.Join(cwd, ".cache"),
		ContentDir: filepath.Join(cwd, "content"),
		Workers:    runtime.NumCPU(),
	}
}

// Load reads a TOML config file over the defaults. A missing path is not an
// error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// FromEnv resolves the config file named by SWIFTDOCS_CONFIG (if any) and
// applies the SWIFTDOCS_CACHE_DIR override.
func FromEnv() (*Config, error) {
	cfg, err := Load(os.Getenv(EnvConfigFile))
	if err != nil {
		return nil, err
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		cfg.CacheDir = dir
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if abs, err := filepath.Abs(c.CacheDir); err == nil {
		c.CacheDir = abs
	}
	if abs, err := filepath.Abs(c.ContentDir); err == nil {
		c.ContentDir = abs
	}
}

// AppleDocsRoot is the cache location for DocC symbol documentation.
func (c *Config) AppleDocsRoot() string {
	return filepath.Join(c.CacheDir, "apple-docs")
}

// HIGRoot is the cache location for Human Interface Guidelines pages.
func (c *Config) HIGRoot() string {
	return filepath.Join(c.CacheDir, "hig")
}

// BookRoot is the cache location for the Swift book markdown mirror.
func (c *Config) BookRoot() string {
	return filepath.Join(c.CacheDir, "swift-book")
}

// EvolutionRoot is the cache location for Swift Evolution proposals.
func (c *Config) EvolutionRoot() string {
	return filepath.Join(c.CacheDir, "swift-evolution", "proposals")
}

// PatternRoots lists the content roots scanned for curated patterns:
// the repo-local content dir first, then the cache copy.
func (c *Config) PatternRoots() []string {
	return []string{
		filepath.Join(c.ContentDir, "patterns"),
		filepath.Join(c.CacheDir, "content", "patterns"),
	}
}

// RecipeRoots lists the content roots scanned for curated recipes.
func (c *Config) RecipeRoots() []string {
	return []string{
		filepath.Join(c.ContentDir, "recipes"),
		filepath.Join(c.CacheDir, "content", "recipes"),
	}
}

// IndexDir is where persisted index snapshots are stored.
func (c *Config) IndexDir() string {
	return filepath.Join(c.CacheDir, "index")
}
