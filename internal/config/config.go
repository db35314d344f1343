package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName = "syllabus"

	DefaultLogLevel      = "info"
	DefaultMaxNameLength = 80
	DefaultSemesters     = 8
	DefaultMaxSemesters  = 20
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig   `yaml:"database"`
	Log         LogConfig        `yaml:"log"`
	Validation  ValidationConfig `yaml:"validation"`
	Limits      LimitsConfig     `yaml:"limits"`
	Board       BoardConfig      `yaml:"board"`
	KeyMappings KeyMappings      `yaml:"key_mappings"`
	ColorScheme ColorScheme      `yaml:"theme"`
}

type DatabaseConfig struct {
	// Path of the SQLite file. SYLLABUS_DB_PATH overrides it.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn (or warning), error
}

type ValidationConfig struct {
	// BlockOnWarnings rejects board changes that leave prerequisite warnings
	BlockOnWarnings bool `yaml:"block_on_warnings"`
}

type LimitsConfig struct {
	MaxNameLength int `yaml:"max_name_length"`
	// MaxSemesters caps the column count of a new board
	MaxSemesters int `yaml:"max_semesters"`
}

type BoardConfig struct {
	// DefaultSemesters is the number of columns a new board starts with
	DefaultSemesters *int `yaml:"default_semesters"`
}

// Semesters returns the configured semester count, falling back to the default
func (b BoardConfig) Semesters() int {
	if b.DefaultSemesters == nil {
		return DefaultSemesters
	}
	return *b.DefaultSemesters
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from SYLLABUS_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("SYLLABUS_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}

	// Load theme from SYLLABUS_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()
	applyEnv(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate reports values that cannot be used
func (c *Config) Validate() error {
	if c.Limits.MaxNameLength <= 0 {
		return fmt.Errorf("%w: limits.max_name_length must be positive", ErrInvalidConfig)
	}
	if c.Limits.MaxSemesters <= 0 {
		return fmt.Errorf("%w: limits.max_semesters must be positive", ErrInvalidConfig)
	}
	if n := c.Board.Semesters(); n < 0 || n > c.Limits.MaxSemesters {
		return fmt.Errorf("%w: board.default_semesters must be between 0 and %d", ErrInvalidConfig, c.Limits.MaxSemesters)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDatabasePath returns ~/.syllabus/syllabus.db
func DefaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+".db")
	}
	return filepath.Join(homeDir, "."+appName, appName+".db")
}

func applyEnv(c *Config) {
	if path := os.Getenv("SYLLABUS_DB_PATH"); path != "" {
		c.Database.Path = path
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Limits.MaxNameLength == 0 {
		c.Limits.MaxNameLength = DefaultMaxNameLength
	}
	if c.Limits.MaxSemesters == 0 {
		c.Limits.MaxSemesters = DefaultMaxSemesters
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
