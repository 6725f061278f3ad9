package model

import "github.com/shopspring/decimal"

// HeaderRecord is the structured header parsed from one pay application
// document. Every field is independently optional: a label that never
// matched leaves its field nil.
type HeaderRecord struct {
	PayAppNo   *int
	Project    *string
	Owner      *string
	Engineer   *string
	Contractor *string

	// WorkFrom/WorkTo hold the raw date tokens as matched in the
	// document (e.g. "1/1/2025"), not normalized to a date type.
	WorkFrom    *string
	WorkTo      *string
	InvoiceDate *string

	OriginalContractAmount     *decimal.Decimal
	SubmittedTotalEarnedToDate *decimal.Decimal
	RetainageToDate            *decimal.Decimal
	ReviewedAmountThisApp      *decimal.Decimal
	PreviousPayments           *decimal.Decimal
	AmountDueThisApplication   *decimal.Decimal

	// Percentages are stored as-written: 12.5 means 12.5%, not 0.125.
	PercentCompleteValue *decimal.Decimal
	RetainageRatePercent *decimal.Decimal
}

// IsEmpty reports whether no field of the record was populated.
func (h HeaderRecord) IsEmpty() bool {
	return h.PayAppNo == nil &&
		h.Project == nil &&
		h.Owner == nil &&
		h.Engineer == nil &&
		h.Contractor == nil &&
		h.WorkFrom == nil &&
		h.WorkTo == nil &&
		h.InvoiceDate == nil &&
		h.OriginalContractAmount == nil &&
		h.SubmittedTotalEarnedToDate == nil &&
		h.RetainageToDate == nil &&
		h.ReviewedAmountThisApp == nil &&
		h.PreviousPayments == nil &&
		h.AmountDueThisApplication == nil &&
		h.PercentCompleteValue == nil &&
		h.RetainageRatePercent == nil
}
