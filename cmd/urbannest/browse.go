package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/session"
	"github.com/dulina20231254-glitch/urbannest/internal/tui"
	"github.com/dulina20231254-glitch/urbannest/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse listings interactively",
		Long: `Open the interactive listing browser.

Listings come from --catalog when given, otherwise from the catalog database
filled by 'urbannest import'. Filter flags set the starting filters; they can
be changed inside the browser.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("theme", "", "colour theme (default, catppuccin-mocha)")

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode, err := sortFlag(cmd, cfg.SortMode())
	if err != nil {
		return common.NewUserError("Invalid --sort value", err)
	}

	store, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout and stderr from here on.
	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	closer, err := common.SetupFileLogger(cfg.Logging.File, level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to set up log file: %w", err)
	}
	defer func() { _ = closer.Close() }()

	sess := session.New(store,
		session.WithLogger(slog.Default()),
		session.WithSortMode(mode),
		session.WithInput(filterInput(cmd)),
	)

	themeName := cfg.UI.Theme
	if t, _ := cmd.Flags().GetString("theme"); t != "" {
		themeName = t
	}

	slog.Info("Browsing catalog", "listings", store.Len(), "theme", themeName, "sort", string(mode))

	return tui.Run(ctx, sess,
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithCurrencySymbol(cfg.UI.CurrencySymbol),
	)
}
