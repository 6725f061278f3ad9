package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/model"
	"github.com/payapp-dev/payapp/internal/store"
)

func newComputeCommand() *cobra.Command {
	var dir string
	var out string

	cmd := &cobra.Command{
		Use:   "compute [items.csv]",
		Short: "Compute derived billing columns for line items",
		Long: "Reads line items from the given CSV (or the workspace seed when " +
			"omitted), derives period/to-date amounts and percent complete, and " +
			"writes the computed CSV.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			src := ""
			if len(args) > 0 {
				src = args[0]
			}
			return runCompute(absDir, src, out)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func runCompute(dir, src, out string) error {
	raw, err := loadItems(dir, src)
	if err != nil {
		return err
	}

	for _, w := range items.Check(raw) {
		slog.Warn("line item coercion", "row", w.Row, "field", w.Field, "detail", w.Desc)
	}

	computed := items.Compute(raw)

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return items.WriteComputed(w, computed)
}

// loadItems reads items from a CSV path, or the workspace default set
// when path is empty.
func loadItems(dir, path string) ([]model.LineItem, error) {
	if path == "" {
		return store.New(dir).DefaultItems()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	raw, err := items.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}
