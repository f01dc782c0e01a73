package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/cli"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/config"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/service"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import catalog files into the catalog database",
		Long: `Validate one or more JSON/YAML catalog files and store their listings in
the local catalog database.

All files are read and validated before anything is written, and the whole
batch is saved in a single transaction. Listings whose id already exists are
updated in place and keep their position in the catalog.`,
		Example: `  urbannest import listings.json
  urbannest import --replace spring.yaml summer.yaml
  urbannest import --history`,
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "validate and report without saving")
	cmd.Flags().Bool("replace", false, "remove the existing catalog before saving")
	cmd.Flags().Bool("history", false, "list previous imports and exit")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	history, _ := cmd.Flags().GetBool("history")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	replace, _ := cmd.Flags().GetBool("replace")
	out := cmd.OutOrStdout()

	if !history && len(args) == 0 {
		return common.NewUserError("Nothing to import", fmt.Errorf("%w: at least one catalog file is required", common.ErrMissingConfig))
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Import", "No listings were written.")
	ctx := interrupts.HandleInterrupts(cmd.Context())
	defer interrupts.Stop()

	if history {
		return printImportHistory(ctx, cfg, out)
	}

	listings, err := readCatalogFiles(ctx, args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Validate the combined batch the same way the browser will load it.
	if _, err := catalog.NewStore(listings); err != nil {
		return common.NewUserError("The catalog files are not valid together", err)
	}

	if dryRun {
		_, err := fmt.Fprintln(out, cli.RenderBox("Dry run",
			fmt.Sprintf("%d listings from %d file(s) are valid.\nNothing was saved.", len(listings), len(args))))
		return err
	}

	db, err := initStorage(ctx, cfg)
	if err != nil {
		return common.NewUserError("Could not open the catalog database", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	summary, err := db.SaveListings(ctx, listings, service.SaveOptions{
		Source:  sourceName(args),
		Replace: replace,
	})
	if err != nil {
		if interrupts.WasInterrupted() {
			return nil
		}
		common.LogError(err, "Import failed", common.Fields{"files": len(args), "replace": replace})
		return common.NewUserError("Import failed", err)
	}

	total, err := db.CountListings(ctx)
	if err != nil {
		return err
	}

	slog.Info("Import complete",
		"import_id", summary.ID,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"total", total)

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf(
		"Imported %d new and %d updated listings (%d in catalog)",
		summary.Inserted, summary.Updated, total)))
	return err
}

// readCatalogFiles decodes every file, showing progress on w.
func readCatalogFiles(ctx context.Context, paths []string, w io.Writer) ([]model.Listing, error) {
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Reading catalogs...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	var all []model.Listing
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listings, err := catalog.FileSource{Path: path}.Listings(ctx)
		if err != nil {
			_ = bar.Clear()
			return nil, common.NewUserError("Could not read "+path, err)
		}
		slog.Debug("Read catalog file", "path", path, "listings", len(listings))

		all = append(all, listings...)
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	return all, nil
}

func sourceName(paths []string) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ", ")
}

func printImportHistory(ctx context.Context, cfg *config.Config, w io.Writer) error {
	db, err := initStorage(ctx, cfg)
	if err != nil {
		return common.NewUserError("Could not open the catalog database", err)
	}
	defer func() { _ = db.Close() }()

	imports, err := db.GetImports(ctx)
	if err != nil {
		return err
	}
	if len(imports) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo("No imports yet"))
		return err
	}

	lines := make([]string, 0, len(imports))
	for _, imp := range imports {
		lines = append(lines, fmt.Sprintf("%s  %-30s +%d ~%d  %s",
			imp.ImportedAt.Local().Format("2006-01-02 15:04"),
			imp.Source, imp.Inserted, imp.Updated,
			cli.SubtleStyle.Render(imp.ID)))
	}

	_, err = fmt.Fprintln(w, cli.RenderBox("Imports", strings.Join(lines, "\n")))
	return err
}
