package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnitLumpSum is the unit code for lump-sum items, which bill a direct
// percentage in the to-date quantity slot when no bid quantity is tracked.
const UnitLumpSum = "LS"

// NoteMOH is the notes sentinel marking a material-on-hand line.
const NoteMOH = "MOH"

// LineItem is one raw billable row as read from an items CSV. The numeric
// columns stay as raw strings; coercion happens at computation time so the
// derived values are always a pure function of what was loaded.
type LineItem struct {
	Description   string
	Unit          string
	UnitPrice     string
	BidQty        string
	ThisPeriodQty string
	ToDateQty     string
	Notes         string
}

// IsLumpSum reports whether the item's unit is the lump-sum code,
// case-insensitive and ignoring surrounding whitespace.
func (li LineItem) IsLumpSum() bool {
	return strings.EqualFold(strings.TrimSpace(li.Unit), UnitLumpSum)
}

// IsMOH reports whether the item is flagged as material on hand.
func (li LineItem) IsMOH() bool {
	return strings.EqualFold(strings.TrimSpace(li.Notes), NoteMOH)
}

// ComputedItem is a line item with its numeric columns coerced and the
// derived billing columns filled in. Derived fields are never edited
// directly; they are recomputed from the raw item every time.
type ComputedItem struct {
	Description string
	Unit        string
	Notes       string

	UnitPrice     decimal.Decimal
	BidQty        decimal.Decimal
	ThisPeriodQty decimal.Decimal
	ToDateQty     decimal.Decimal

	ThisPeriodAmount decimal.Decimal
	ToDateAmount     decimal.Decimal
	PctComplete      decimal.Decimal
}

// IsMOH reports whether the computed item is flagged as material on hand.
func (ci ComputedItem) IsMOH() bool {
	return strings.EqualFold(strings.TrimSpace(ci.Notes), NoteMOH)
}
