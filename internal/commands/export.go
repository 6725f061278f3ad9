package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/audit"
	"github.com/payapp-dev/payapp/internal/gitops"
	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/report"
)

const (
	defaultCSVName  = "pay_app_items_filtered.csv"
	defaultXLSXName = "pay_app_report.xlsx"
)

func newExportCommand() *cobra.Command {
	var dir string
	var headerPath string
	var itemsPath string
	var mohFilter string
	var search string
	var minPct float64

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered items CSV and the XLSX report bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			f := items.Filter{
				MOH:    items.ParseMOHMode(mohFilter),
				Search: search,
				MinPct: decimal.NewFromFloat(minPct),
			}
			return runExport(absDir, headerPath, itemsPath, f)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&headerPath, "header", "", "header CSV (default: workspace header)")
	cmd.Flags().StringVar(&itemsPath, "items", "", "items CSV (default: workspace seed)")
	cmd.Flags().StringVar(&mohFilter, "moh", "all", "material-on-hand filter (all, installed, moh)")
	cmd.Flags().StringVar(&search, "search", "", "description substring filter")
	cmd.Flags().Float64Var(&minPct, "min-pct", 0, "minimum percent complete")

	return cmd
}

func runExport(dir, headerPath, itemsPath string, f items.Filter) error {
	cfg := loadConfig(dir)

	raw, err := loadItems(dir, itemsPath)
	if err != nil {
		return err
	}
	computed := items.Compute(raw)
	filtered := items.Apply(computed, f)

	exportDir := filepath.Join(dir, "exports")
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}

	csvPath := filepath.Join(exportDir, defaultCSVName)
	cf, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}
	if err := report.WriteItemsCSV(cf, filtered); err != nil {
		cf.Close()
		return fmt.Errorf("writing %s: %w", csvPath, err)
	}
	if err := cf.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", csvPath, err)
	}
	fmt.Printf("Wrote %s (%d rows)\n", csvPath, len(filtered))

	// The report bundle needs header data; without it only the CSV is
	// produced.
	rec, ok, err := loadHeader(dir, headerPath)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No header data; skipping the XLSX report bundle.")
		return nil
	}

	out, err := report.BuildWorkbook(report.Bundle{
		Header:        rec,
		AllItems:      computed,
		FilteredItems: filtered,
	})
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	xlsxPath := filepath.Join(exportDir, defaultXLSXName)
	if err := os.WriteFile(xlsxPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", xlsxPath, err)
	}
	fmt.Printf("Wrote %s\n", xlsxPath)

	entry := audit.Entry{
		Timestamp: time.Now(),
		Action:    "export",
		Source:    xlsxPath,
		Details:   fmt.Sprintf("%d of %d rows after filters", len(filtered), len(computed)),
	}
	if err := audit.Append(dir, []audit.Entry{entry}); err != nil {
		slog.Warn("activity log write failed", "error", err)
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(dir) && gitops.HasChanges(dir) {
		if _, err := gitops.CommitAll(dir, "export: report bundle", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			slog.Warn("auto-commit failed", "error", err)
		}
	}

	return nil
}
