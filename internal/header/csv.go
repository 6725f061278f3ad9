// Package header reads and writes the one-row header CSV form of a
// parsed pay application.
package header

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payapp-dev/payapp/internal/coerce"
	"github.com/payapp-dev/payapp/internal/model"
)

// Header is the CSV header, in canonical column order.
const Header = "pay_app_no,project,owner,engineer,contractor,work_from,work_to," +
	"invoice_date,original_contract_amount,submitted_total_earned_to_date," +
	"percent_complete_value,retainage_rate_percent,retainage_to_date," +
	"reviewed_amount_this_app,previous_payments,amount_due_this_application"

// Columns returns the canonical column names.
func Columns() []string {
	return strings.Split(Header, ",")
}

// Read parses a header CSV and returns the first data row. Columns are
// located by name; unknown columns are ignored and missing ones stay
// nil. ok is false when the file holds no data row at all: that is the
// empty-header condition callers must treat as blocking for summaries.
func Read(r io.Reader) (rec model.HeaderRecord, ok bool, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return model.HeaderRecord{}, false, fmt.Errorf("reading header CSV: %w", err)
	}
	if len(records) < 2 {
		return model.HeaderRecord{}, false, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	row := records[1]
	cell := func(name string) string {
		i, found := cols[name]
		if !found || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec.PayAppNo = intCell(cell("pay_app_no"))
	rec.Project = textCell(cell("project"))
	rec.Owner = textCell(cell("owner"))
	rec.Engineer = textCell(cell("engineer"))
	rec.Contractor = textCell(cell("contractor"))
	rec.WorkFrom = textCell(cell("work_from"))
	rec.WorkTo = textCell(cell("work_to"))
	rec.InvoiceDate = textCell(cell("invoice_date"))
	rec.OriginalContractAmount = moneyCell(cell("original_contract_amount"))
	rec.SubmittedTotalEarnedToDate = moneyCell(cell("submitted_total_earned_to_date"))
	rec.PercentCompleteValue = moneyCell(cell("percent_complete_value"))
	rec.RetainageRatePercent = moneyCell(cell("retainage_rate_percent"))
	rec.RetainageToDate = moneyCell(cell("retainage_to_date"))
	rec.ReviewedAmountThisApp = moneyCell(cell("reviewed_amount_this_app"))
	rec.PreviousPayments = moneyCell(cell("previous_payments"))
	rec.AmountDueThisApplication = moneyCell(cell("amount_due_this_application"))

	return rec, true, nil
}

// Write writes one HeaderRecord with the canonical header row. Nil
// fields become empty cells.
func Write(w io.Writer, rec model.HeaderRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := []string{
		intString(rec.PayAppNo),
		textString(rec.Project),
		textString(rec.Owner),
		textString(rec.Engineer),
		textString(rec.Contractor),
		textString(rec.WorkFrom),
		textString(rec.WorkTo),
		textString(rec.InvoiceDate),
		moneyString(rec.OriginalContractAmount),
		moneyString(rec.SubmittedTotalEarnedToDate),
		moneyString(rec.PercentCompleteValue),
		moneyString(rec.RetainageRatePercent),
		moneyString(rec.RetainageToDate),
		moneyString(rec.ReviewedAmountThisApp),
		moneyString(rec.PreviousPayments),
		moneyString(rec.AmountDueThisApplication),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return cw.Error()
}

func intCell(s string) *int {
	if n, st := coerce.Int(s); st == coerce.Exact {
		return &n
	}
	return nil
}

func textCell(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func moneyCell(s string) *decimal.Decimal {
	if d, st := coerce.Number(s); st == coerce.Exact {
		return &d
	}
	return nil
}

func intString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func textString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func moneyString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
