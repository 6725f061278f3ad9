// Package summary derives the top-level financial metrics shown for a
// pay application. Metrics are pure functions of the header record and
// the computed line items, recomputed on every read.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Metrics holds the headline numbers for one application.
type Metrics struct {
	Contract        decimal.Decimal
	Earned          decimal.Decimal
	PercentComplete decimal.Decimal
	RetainageToDate decimal.Decimal
	ReviewedThisApp decimal.Decimal
}

// Compute derives metrics from a header record and computed items.
// Earned falls back to the line-item to-date total when the header
// carries no submitted value. A zero contract yields 0% complete, not
// a division error.
func Compute(h model.HeaderRecord, computed []model.ComputedItem) Metrics {
	contract := orZero(h.OriginalContractAmount)

	earned := items.ToDateTotal(computed)
	if h.SubmittedTotalEarnedToDate != nil {
		earned = *h.SubmittedTotalEarnedToDate
	}

	pct := decimal.Zero
	if !contract.IsZero() {
		pct = earned.Div(contract).Mul(hundred).Round(2)
	}

	rate := orZero(h.RetainageRatePercent)
	retainage := earned.Mul(rate).Div(hundred).Round(2)

	return Metrics{
		Contract:        contract,
		Earned:          earned,
		PercentComplete: pct,
		RetainageToDate: retainage,
		ReviewedThisApp: orZero(h.ReviewedAmountThisApp),
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
