package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/config"
	"github.com/payapp-dev/payapp/internal/format"
	"github.com/payapp-dev/payapp/internal/header"
	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/model"
	"github.com/payapp-dev/payapp/internal/store"
	"github.com/payapp-dev/payapp/internal/summary"
)

// errNoHeader is the blocking empty-header condition: metrics cannot
// be shown without header data.
var errNoHeader = errors.New("header data is empty: parse a PDF or add a header CSV")

func newSummaryCommand() *cobra.Command {
	var dir string
	var headerPath string
	var itemsPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show top-level financial metrics for the current application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runSummary(absDir, headerPath, itemsPath)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&headerPath, "header", "", "header CSV (default: workspace header)")
	cmd.Flags().StringVar(&itemsPath, "items", "", "items CSV (default: workspace seed)")

	return cmd
}

func runSummary(dir, headerPath, itemsPath string) error {
	cfg := loadConfig(dir)

	rec, ok, err := loadHeader(dir, headerPath)
	if err != nil {
		return err
	}
	if !ok {
		return errNoHeader
	}
	applyDefaultRetainage(&rec, cfg)

	raw, err := loadItems(dir, itemsPath)
	if err != nil {
		return err
	}
	computed := items.Compute(raw)

	m := summary.Compute(rec, computed)

	fmt.Println("Summary")
	fmt.Printf("  %-28s %s\n", "Contract", format.Money(m.Contract))
	fmt.Printf("  %-28s %s\n", "Earned to Date (Submitted)", format.Money(m.Earned))
	fmt.Printf("  %-28s %s\n", "% Complete", format.Percent(m.PercentComplete))
	fmt.Printf("  %-28s %s\n", "Retainage to Date", format.Money(m.RetainageToDate))
	fmt.Printf("  %-28s %s\n", "Reviewed Amount (This App)", format.Money(m.ReviewedThisApp))

	return nil
}

// loadHeader reads a header record from a CSV path, or the workspace
// default when path is empty.
func loadHeader(dir, path string) (model.HeaderRecord, bool, error) {
	if path == "" {
		return store.New(dir).DefaultHeader()
	}

	f, err := os.Open(path)
	if err != nil {
		return model.HeaderRecord{}, false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rec, ok, err := header.Read(f)
	if err != nil {
		return model.HeaderRecord{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return rec, ok, nil
}

// applyDefaultRetainage fills the configured rate when the header
// carries none.
func applyDefaultRetainage(rec *model.HeaderRecord, cfg *config.Config) {
	if rec.RetainageRatePercent == nil && cfg.Retainage.DefaultRatePercent > 0 {
		rate := decimal.NewFromFloat(cfg.Retainage.DefaultRatePercent)
		rec.RetainageRatePercent = &rate
	}
}
