package tui

import (
	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	CurrencySymbol string
	Width          int
	Height         int
	AltScreen      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		CurrencySymbol: cli.DefaultCurrencySymbol,
		Width:          100,
		Height:         30,
		AltScreen:      true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithCurrencySymbol sets the symbol prices are shown with.
func WithCurrencySymbol(symbol string) Option {
	return func(c *Config) {
		if symbol != "" {
			c.CurrencySymbol = symbol
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
