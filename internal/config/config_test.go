package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/query"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/home/tester/.local/share/urbannest/catalog.db", cfg.Database.Path)
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, "£", cfg.UI.CurrencySymbol)
	assert.Equal(t, query.SortNone, cfg.SortMode())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  path: /data/listings.json
ui:
  theme: catppuccin-mocha
  currency_symbol: "€"
  default_sort: price-desc
logging:
  level: debug
  format: json
`), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/data/listings.json", cfg.Catalog.Path)
	assert.Equal(t, "catppuccin-mocha", cfg.UI.Theme)
	assert.Equal(t, "€", cfg.UI.CurrencySymbol)
	assert.Equal(t, query.SortPriceDesc, cfg.SortMode())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Path: "/tmp/catalog.db"},
			UI:       UIConfig{DefaultSort: "none"},
			Logging:  LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"catalog only", func(c *Config) { c.Database.Path = ""; c.Catalog.Path = "/tmp/l.json" }, nil},
		{"no source", func(c *Config) { c.Database.Path = "" }, common.ErrMissingConfig},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, common.ErrInvalidConfig},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, common.ErrInvalidConfig},
		{"bad sort", func(c *Config) { c.UI.DefaultSort = "random" }, common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("URBANNEST_DATA", "/srv/nest")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/home/tester/catalog.db", ExpandPath("~/catalog.db"))
	assert.Equal(t, "/srv/nest/catalog.db", ExpandPath("$URBANNEST_DATA/catalog.db"))
	assert.Equal(t, "relative/file.json", ExpandPath("./relative//file.json"))
}
