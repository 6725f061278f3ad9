package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/audit"
	"github.com/payapp-dev/payapp/internal/extract"
	"github.com/payapp-dev/payapp/internal/inbox"
	"github.com/payapp-dev/payapp/internal/gitops"
	"github.com/payapp-dev/payapp/internal/model"
	"github.com/payapp-dev/payapp/internal/pdftext"
	"github.com/payapp-dev/payapp/internal/store"
)

func newParseCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "parse [pay-app.pdf]",
		Short: "Parse a pay application PDF into the workspace header",
		Long: "Parses the given PDF, or with no argument the next PDF waiting " +
			"in the workspace inbox. Inbox documents move to inbox/processed " +
			"after a successful parse.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if len(args) > 0 {
				return runParse(absDir, args[0])
			}
			return runParseInbox(absDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}

func runParseInbox(dir string) error {
	files, err := inbox.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("inbox is empty: drop a PDF in inbox/ or pass a path")
	}

	next := files[0]
	if err := runParse(dir, next.Path); err != nil {
		return err
	}
	if err := inbox.MarkProcessed(dir, next.Name); err != nil {
		return err
	}
	fmt.Printf("Moved %s to inbox/processed\n", next.Name)
	return nil
}

func runParse(dir, pdfPath string) error {
	cfg := loadConfig(dir)

	chain := pdftext.ChainFromNames(slog.Default(), cfg.PDF.Backends)
	text := chain.ExtractText(pdfPath)
	if text == "" {
		// Not an error: the document simply gave up no text. The
		// operator can still fill the header CSV by hand.
		fmt.Printf("No text could be extracted from %s.\n", pdfPath)
		fmt.Println("Enter header data manually in", filepath.Join(dir, store.DataDir, store.HeaderLatestFile))
		return nil
	}

	rec := extract.ParseHeader(text)
	bound := printHeader(rec)

	st := store.New(dir)
	if err := st.SaveHeader(rec); err != nil {
		return err
	}
	fmt.Printf("Saved header (%d fields bound) to %s\n", bound, st.HeaderPath())

	entry := audit.Entry{
		Timestamp: time.Now(),
		Action:    "parse",
		Source:    pdfPath,
		Details:   fmt.Sprintf("%d fields bound", bound),
	}
	if err := audit.Append(dir, []audit.Entry{entry}); err != nil {
		slog.Warn("activity log write failed", "error", err)
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(dir) && gitops.HasChanges(dir) {
		msg := "parse: " + filepath.Base(pdfPath)
		if _, err := gitops.CommitAll(dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			slog.Warn("auto-commit failed", "error", err)
		}
	}

	return nil
}

// printHeader lists the bound fields in canonical column order and
// returns how many there were.
func printHeader(rec model.HeaderRecord) int {
	bound := 0
	show := func(name, value string) {
		fmt.Printf("  %-32s %s\n", name, value)
		bound++
	}

	if rec.PayAppNo != nil {
		show("pay_app_no", fmt.Sprintf("%d", *rec.PayAppNo))
	}

	texts := []struct {
		name  string
		value *string
	}{
		{"project", rec.Project},
		{"owner", rec.Owner},
		{"engineer", rec.Engineer},
		{"contractor", rec.Contractor},
		{"work_from", rec.WorkFrom},
		{"work_to", rec.WorkTo},
		{"invoice_date", rec.InvoiceDate},
	}
	for _, f := range texts {
		if f.value != nil {
			show(f.name, *f.value)
		}
	}

	numbers := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"original_contract_amount", rec.OriginalContractAmount},
		{"submitted_total_earned_to_date", rec.SubmittedTotalEarnedToDate},
		{"percent_complete_value", rec.PercentCompleteValue},
		{"retainage_rate_percent", rec.RetainageRatePercent},
		{"retainage_to_date", rec.RetainageToDate},
		{"reviewed_amount_this_app", rec.ReviewedAmountThisApp},
		{"previous_payments", rec.PreviousPayments},
		{"amount_due_this_application", rec.AmountDueThisApplication},
	}
	for _, f := range numbers {
		if f.value != nil {
			show(f.name, f.value.String())
		}
	}

	return bound
}
