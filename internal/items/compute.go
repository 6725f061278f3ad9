// Package items derives billing amounts and percent-complete values
// from raw pay application line items, and reads/writes the items CSV
// form. All numeric coercion is fail-soft: a bad or missing cell is
// zero, never an error.
package items

import (
	"github.com/shopspring/decimal"

	"github.com/payapp-dev/payapp/internal/coerce"
	"github.com/payapp-dev/payapp/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Compute derives the computed columns for every item. The input slice
// is left untouched; derived values are a pure function of the raw
// cells, so recomputing the same input always yields the same output.
func Compute(raw []model.LineItem) []model.ComputedItem {
	out := make([]model.ComputedItem, 0, len(raw))
	for _, li := range raw {
		out = append(out, computeOne(li))
	}
	return out
}

func computeOne(li model.LineItem) model.ComputedItem {
	unitPrice, _ := coerce.Number(li.UnitPrice)
	bidQty, _ := coerce.Number(li.BidQty)
	thisPeriodQty, _ := coerce.Number(li.ThisPeriodQty)
	toDateQty, _ := coerce.Number(li.ToDateQty)

	return model.ComputedItem{
		Description:      li.Description,
		Unit:             li.Unit,
		Notes:            li.Notes,
		UnitPrice:        unitPrice,
		BidQty:           bidQty,
		ThisPeriodQty:    thisPeriodQty,
		ToDateQty:        toDateQty,
		ThisPeriodAmount: thisPeriodQty.Mul(unitPrice).Round(2),
		ToDateAmount:     toDateQty.Mul(unitPrice).Round(2),
		PctComplete:      pctComplete(li, bidQty, toDateQty),
	}
}

// pctComplete applies the unit rule. Lump-sum items with no bid
// quantity bill their percentage directly in the to-date slot; all
// other items derive it from the quantity ratio. A zero bid quantity
// outside the lump-sum rule is 0, not a division error. Results are
// clamped to [0,100] and rounded to 2 places.
func pctComplete(li model.LineItem, bidQty, toDateQty decimal.Decimal) decimal.Decimal {
	var pct decimal.Decimal
	switch {
	case li.IsLumpSum() && bidQty.IsZero():
		pct = toDateQty.Mul(hundred)
	case bidQty.IsZero():
		return decimal.Zero.Round(2)
	default:
		pct = toDateQty.Div(bidQty).Mul(hundred)
	}
	return clampPct(pct).Round(2)
}

func clampPct(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ToDateTotal sums to_date_amount across computed items. Used by the
// summary when the header carries no submitted earned-to-date value.
func ToDateTotal(items []model.ComputedItem) decimal.Decimal {
	total := decimal.Zero
	for _, ci := range items {
		total = total.Add(ci.ToDateAmount)
	}
	return total
}
