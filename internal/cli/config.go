package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/promptcanvas/promptcanvas/pkg/design"
	"github.com/promptcanvas/promptcanvas/pkg/pipeline"
)

// =============================================================================
// Config - Optional TOML Configuration
// =============================================================================

// Config holds the optional promptcanvas.toml configuration. All fields have
// working defaults so a missing config file is never an error.
type Config struct {
	// TemplatesDir is an additional directory scanned for layout templates.
	TemplatesDir string `toml:"templates_dir"`

	// DefaultRatio and DefaultTransparency override the built-in defaults.
	DefaultRatio        int `toml:"default_ratio"`
	DefaultTransparency int `toml:"default_transparency"`

	// Design overrides the default corporate-identity theme.
	Design *design.Theme `toml:"design"`

	// Serve configures the HTTP API server.
	Serve ServeConfig `toml:"serve"`

	// Redis enables the Redis cache backend when Addr is set.
	Redis RedisConfig `toml:"redis"`

	// Mongo enables the MongoDB run store when URI is set.
	Mongo MongoConfig `toml:"mongo"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// RedisConfig holds Redis cache backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds MongoDB run store settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() *Config {
	return &Config{
		DefaultRatio:        pipeline.DefaultRatio,
		DefaultTransparency: pipeline.DefaultTransparency,
		Serve:               ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads promptcanvas.toml from the standard locations and merges
// it over the defaults. Lookup order: $PROMPTCANVAS_CONFIG, ./promptcanvas.toml,
// then ~/.config/promptcanvas/promptcanvas.toml. A missing or unreadable file
// yields the defaults.
func LoadConfig() *Config {
	for _, path := range configPaths() {
		if cfg, err := readConfig(path); err == nil {
			return cfg
		}
	}
	return defaultConfig()
}

// readConfig loads a single config file over the defaults. Keys absent from
// the file keep their default; an explicit zero in the file stays zero, so
// default_transparency = 0 resolves to the 0.1 opacity floor.
func readConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPaths returns candidate config file locations in priority order.
func configPaths() []string {
	var paths []string
	if env := os.Getenv("PROMPTCANVAS_CONFIG"); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, "promptcanvas.toml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "promptcanvas.toml"))
	}
	return paths
}

// Theme returns the configured design theme, or nil when the config does not
// override it.
func (c *Config) Theme() *design.Theme {
	if c.Design == nil {
		return nil
	}
	theme := *c.Design
	if theme.CornerRadius == "" {
		theme.CornerRadius = design.RadiusMedium
	}
	if theme.Shadow == "" {
		theme.Shadow = design.ShadowSoft
	}
	if theme.Palette.Background == "" || theme.Palette.Primary == "" || theme.Palette.Accent == "" {
		def := design.DefaultPalette()
		if theme.Palette.Background == "" {
			theme.Palette.Background = def.Background
		}
		if theme.Palette.Primary == "" {
			theme.Palette.Primary = def.Primary
		}
		if theme.Palette.Accent == "" {
			theme.Palette.Accent = def.Accent
		}
	}
	return &theme
}
