package config

import (
	"fmt"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/query"
	"github.com/spf13/viper"
)

// Default locations. They are expanded with ExpandPath before use.
const (
	DefaultDatabasePath = "$HOME/.local/share/urbannest/catalog.db"
	DefaultLogFile      = "$HOME/.local/state/urbannest/urbannest.log"
)

// Config is the typed view of the application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	UI       UIConfig
	Logging  LoggingConfig
}

// DatabaseConfig locates the catalog database.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig selects a catalog file to browse instead of the database.
type CatalogConfig struct {
	Path string
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	Theme          string
	CurrencySymbol string
	DefaultSort    string
}

// LoggingConfig mirrors the --log-level and --log-format flags.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("catalog.path", "")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.currency_symbol", "£")
	v.SetDefault("ui.default_sort", "none")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)
}

// Load reads the configuration from v and expands paths.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Catalog: CatalogConfig{
			Path: ExpandPath(v.GetString("catalog.path")),
		},
		UI: UIConfig{
			Theme:          v.GetString("ui.theme"),
			CurrencySymbol: v.GetString("ui.currency_symbol"),
			DefaultSort:    v.GetString("ui.default_sort"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SortMode returns the configured default sort mode.
func (c *Config) SortMode() query.SortMode {
	mode, err := query.ParseSortMode(c.UI.DefaultSort)
	if err != nil {
		return query.SortNone
	}
	return mode
}

// Validate checks the values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Database.Path == "" && c.Catalog.Path == "" {
		return fmt.Errorf("%w: either database.path or catalog.path must be set", common.ErrMissingConfig)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := query.ParseSortMode(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("%w: ui.default_sort: %w", common.ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
