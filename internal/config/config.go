package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/spf13/viper"
)

const appName = "galleria"

// Cache drivers
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Pagination modes
const (
	PaginationReplace = "replace"
	PaginationAppend  = "append"
)

// Config holds all application configuration
type Config struct {
	Flickr   FlickrConfig   `mapstructure:"flickr"`
	Cache    CacheConfig    `mapstructure:"cache"`
	UI       UIConfig       `mapstructure:"ui"`
	Viewer   ViewerConfig   `mapstructure:"viewer"`
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	// path the config was read from, empty when running on defaults
	file string
}

// FlickrConfig holds upstream API configuration
type FlickrConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	PerPage int           `mapstructure:"per_page"`
	Extras  string        `mapstructure:"extras"` // comma separated, url_s is required for thumbnails
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig selects where the last good snapshot is persisted
type CacheConfig struct {
	Driver string `mapstructure:"driver"` // "bolt", "sqlite" or "memory"
	Path   string `mapstructure:"path"`
}

// UIConfig holds TUI configuration
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	Columns    int    `mapstructure:"columns"`
	Pagination string `mapstructure:"pagination"` // "replace" or "append"
}

// ViewerConfig holds the external image viewer
type ViewerConfig struct {
	Command string   `mapstructure:"command"` // empty for system default
	Args    []string `mapstructure:"args"`
}

// DownloadConfig holds image download settings
type DownloadConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Flickr: FlickrConfig{
			BaseURL: "https://api.flickr.com/services/rest/",
			PerPage: 20,
			Extras:  "url_s",
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Driver: DriverBolt,
			Path:   filepath.Join(defaultCachePath(), "galleria.db"),
		},
		UI: UIConfig{
			Theme:      "default",
			Columns:    2,
			Pagination: PaginationReplace,
		},
		Viewer: ViewerConfig{
			Args: []string{},
		},
		Download: DownloadConfig{
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := c.Flickr.Validate(); err != nil {
		return fmt.Errorf("flickr: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return validation.ValidateStruct(&c.Download,
		validation.Field(&c.Download.Concurrency, validation.Required, validation.Min(1), validation.Max(32)),
	)
}

// Validate checks the upstream settings. The API key is checked separately
// so the setup flow can run against an otherwise valid config.
func (c *FlickrConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.PerPage, validation.Required, validation.Min(1), validation.Max(500)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// Validate checks the cache settings
func (c *CacheConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverBolt, DriverSQLite, DriverMemory)),
	); err != nil {
		return err
	}
	if c.Driver != DriverMemory && c.Path == "" {
		return fmt.Errorf("driver %q requires a path", c.Driver)
	}
	return nil
}

// Validate checks the UI settings
func (c *UIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Columns, validation.Required, validation.Min(1), validation.Max(6)),
		validation.Field(&c.Pagination, validation.Required, validation.In(PaginationReplace, PaginationAppend)),
	)
}

// IsConfigured returns true if the API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.Flickr.APIKey) != ""
}

// RequireAPIKey returns domain.ErrMissingAPIKey when no key is set
func (c *Config) RequireAPIKey() error {
	if !c.IsConfigured() {
		return domain.ErrMissingAPIKey
	}
	return nil
}

// File returns the path the config was loaded from, if any
func (c *Config) File() string {
	return c.file
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName, appName+".log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, appName+".log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// defaultCachePath returns the default cache directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName, "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, "cache")
	}
}

// newViper returns a viper instance with defaults and env overrides registered.
// Every key needs a default, otherwise AutomaticEnv cannot see it during Unmarshal.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GALLERIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("flickr.api_key", defaults.Flickr.APIKey)
	v.SetDefault("flickr.base_url", defaults.Flickr.BaseURL)
	v.SetDefault("flickr.per_page", defaults.Flickr.PerPage)
	v.SetDefault("flickr.extras", defaults.Flickr.Extras)
	v.SetDefault("flickr.timeout", defaults.Flickr.Timeout)

	v.SetDefault("cache.driver", defaults.Cache.Driver)
	v.SetDefault("cache.path", defaults.Cache.Path)

	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.columns", defaults.UI.Columns)
	v.SetDefault("ui.pagination", defaults.UI.Pagination)

	v.SetDefault("viewer.command", defaults.Viewer.Command)
	v.SetDefault("viewer.args", defaults.Viewer.Args)

	v.SetDefault("download.concurrency", defaults.Download.Concurrency)

	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)
	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory;
// a missing file there is fine. An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to its file, or to the default location
// when it was not loaded from one. Returns the path written.
func SaveConfig(cfg *Config) (string, error) {
	configFile := cfg.file
	if configFile == "" {
		configFile = filepath.Join(defaultConfigPath(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("flickr.api_key", cfg.Flickr.APIKey)
	v.Set("flickr.base_url", cfg.Flickr.BaseURL)
	v.Set("flickr.per_page", cfg.Flickr.PerPage)
	v.Set("flickr.extras", cfg.Flickr.Extras)
	v.Set("flickr.timeout", cfg.Flickr.Timeout.String())

	v.Set("cache.driver", cfg.Cache.Driver)
	v.Set("cache.path", cfg.Cache.Path)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.pagination", cfg.UI.Pagination)

	v.Set("viewer.command", cfg.Viewer.Command)
	v.Set("viewer.args", cfg.Viewer.Args)

	v.Set("download.concurrency", cfg.Download.Concurrency)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	cfg.file = configFile
	return configFile, nil
}
