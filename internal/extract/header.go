package extract

import (
	"github.com/shopspring/decimal"

	"github.com/payapp-dev/payapp/internal/coerce"
	"github.com/payapp-dev/payapp/internal/model"
)

// Kind selects which extractor a header field uses.
type Kind int

const (
	KindMoney Kind = iota
	KindPercent
	KindText
	KindInt
)

// Field maps a header field name to its extractor kind and label
// alternation. MaxLen applies to KindText only (0 = DefaultTextLen).
type Field struct {
	Name   string
	Kind   Kind
	Labels string
	MaxLen int
}

// HeaderFields is the dispatch table driving ParseHeader. Each field is
// extracted independently against the full document text, so overlapping
// labels bind per-field to their own nearest qualifying value.
var HeaderFields = []Field{
	{Name: "pay_app_no", Kind: KindInt, Labels: `(?:Pay App|Pay Application|Application No\.?)\s*[:#\- ]+\s*(\d+)`},
	{Name: "project", Kind: KindText, Labels: `Project|Project Name`},
	{Name: "owner", Kind: KindText, Labels: `Owner`},
	{Name: "engineer", Kind: KindText, Labels: `Engineer|Consultant`},
	{Name: "contractor", Kind: KindText, Labels: `Contractor`},
	{Name: "invoice_date", Kind: KindText, Labels: `Invoice\s*Date|Application\s*Date|Date`, MaxLen: 20},
	{Name: "original_contract_amount", Kind: KindMoney, Labels: `Original\s+Contract\s+Amount|Contract\s+Amount|Original\s+Agreement`},
	{Name: "submitted_total_earned_to_date", Kind: KindMoney, Labels: `Total\s+Earned\s+to\s+Date|Earned\s+to\s+date|Total\s+Completed\s+&\s+Stored\s+to\s+Date`},
	{Name: "percent_complete_value", Kind: KindPercent, Labels: `Percent\s*Complete|% Complete|Percent\s+Complete\s+Value`},
	{Name: "retainage_rate_percent", Kind: KindPercent, Labels: `Retainage\s*Rate|Retainage\s*\(%|% Retainage`},
	{Name: "retainage_to_date", Kind: KindMoney, Labels: `Retainage\s+to\s+Date|Total\s+Retainage`},
	{Name: "reviewed_amount_this_app", Kind: KindMoney, Labels: `Reviewed|Work\s+Completed\s+this\s+Period|This\s+Period\s+Earned`},
	{Name: "previous_payments", Kind: KindMoney, Labels: `Previous\s+Payments|Less\s+Previous\s+Payments|Less\s+Previous`},
	{Name: "amount_due_this_application", Kind: KindMoney, Labels: `Amount\s+Due\s+This\s+Application|Net\s+Amount\s+Due|Payment\s+Due`},
}

// ParseHeader assembles a HeaderRecord from raw document text. Fields
// whose labels never match stay nil; nothing here returns an error.
func ParseHeader(text string) model.HeaderRecord {
	var rec model.HeaderRecord

	for _, f := range HeaderFields {
		switch f.Kind {
		case KindMoney:
			if d, ok := FindMoney(f.Labels, text); ok {
				setMoney(&rec, f.Name, d)
			}
		case KindPercent:
			if d, ok := FindPercent(f.Labels, text); ok {
				setMoney(&rec, f.Name, d)
			}
		case KindText:
			if s, ok := FindText(f.Labels, text, f.MaxLen); ok {
				setText(&rec, f.Name, s)
			}
		case KindInt:
			// The labels here carry their own capture group, so
			// findFirst is used directly rather than a window.
			if raw, ok := findFirst(`(?i)`+f.Labels, text); ok {
				// A match that will not coerce to an integer is
				// dropped, not surfaced.
				if n, st := coerce.Int(raw); st == coerce.Exact {
					setInt(&rec, f.Name, n)
				}
			}
		}
	}

	if from, to, ok := FindDateRange(text); ok {
		rec.WorkFrom = &from
		rec.WorkTo = &to
	}

	return rec
}

func setMoney(rec *model.HeaderRecord, name string, d decimal.Decimal) {
	switch name {
	case "original_contract_amount":
		rec.OriginalContractAmount = &d
	case "submitted_total_earned_to_date":
		rec.SubmittedTotalEarnedToDate = &d
	case "retainage_to_date":
		rec.RetainageToDate = &d
	case "reviewed_amount_this_app":
		rec.ReviewedAmountThisApp = &d
	case "previous_payments":
		rec.PreviousPayments = &d
	case "amount_due_this_application":
		rec.AmountDueThisApplication = &d
	case "percent_complete_value":
		rec.PercentCompleteValue = &d
	case "retainage_rate_percent":
		rec.RetainageRatePercent = &d
	}
}

func setText(rec *model.HeaderRecord, name, s string) {
	switch name {
	case "project":
		rec.Project = &s
	case "owner":
		rec.Owner = &s
	case "engineer":
		rec.Engineer = &s
	case "contractor":
		rec.Contractor = &s
	case "invoice_date":
		rec.InvoiceDate = &s
	}
}

func setInt(rec *model.HeaderRecord, name string, n int) {
	if name == "pay_app_no" {
		rec.PayAppNo = &n
	}
}
