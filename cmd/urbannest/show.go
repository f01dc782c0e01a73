package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print the full detail of one listing",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("format", "text", "output format (text, json)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return common.NewUserError("Invalid --format value", fmt.Errorf("%w: format %q", common.ErrInvalidConfig, format))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	listing, ok := store.Get(args[0])
	if !ok {
		return common.NewUserError(
			fmt.Sprintf("No listing with id %q", args[0]),
			common.ErrNotFound,
		)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, listing)
	}

	_, err = fmt.Fprintln(out, cli.RenderListingDetail(listing, cfg.UI.CurrencySymbol))
	return err
}
