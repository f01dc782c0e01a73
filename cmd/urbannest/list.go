package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/query"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print listings matching the given filters",
		Long: `Run a one-shot query over the catalog and print the result.

Filters that cannot be used (for example a non-numeric price) are ignored
rather than rejected, exactly as in the interactive browser.`,
		Example: `  urbannest list --type flat --max-price 300000 --sort price-asc
  urbannest list --postcode br1 --format json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	addFilterFlags(cmd)
	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode, err := sortFlag(cmd, cfg.SortMode())
	if err != nil {
		return common.NewUserError("Invalid --sort value", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return common.NewUserError("Invalid --format value", fmt.Errorf("%w: format %q", common.ErrInvalidConfig, format))
	}

	store, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	in := filterInput(cmd)
	listings := query.Run(store, in, mode)

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, listings)
	}

	if err := cli.RenderListingTable(out, listings, cfg.UI.CurrencySymbol); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d of %d listings", len(listings), store.Len())
	if n := query.Sanitize(in).ActiveCount(); n > 0 {
		summary += fmt.Sprintf(", %d filter(s)", n)
	}
	summary += ", " + mode.Label()
	_, err = fmt.Fprintln(out, cli.SubtleStyle.Render(summary))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
