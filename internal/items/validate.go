package items

import (
	"fmt"

	"github.com/payapp-dev/payapp/internal/coerce"
	"github.com/payapp-dev/payapp/internal/model"
)

// Warning flags a raw cell that the computation engine will silently
// default or clamp. Warnings are advisory: computation proceeds
// regardless, they only tell the operator what got coerced.
type Warning struct {
	Row   int // 1-based data row, matching the CSV line minus header
	Field string
	Desc  string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d %s: %s", w.Row, w.Field, w.Desc)
}

// Check reports cells that will not survive coercion unchanged.
func Check(raw []model.LineItem) []Warning {
	var warns []Warning

	for i, li := range raw {
		row := i + 1
		cells := []struct {
			field string
			value string
		}{
			{ColUnitPrice, li.UnitPrice},
			{ColBidQty, li.BidQty},
			{ColThisPeriodQty, li.ThisPeriodQty},
			{ColToDateQty, li.ToDateQty},
		}
		for _, c := range cells {
			d, st := coerce.Number(c.value)
			if st == coerce.Defaulted {
				warns = append(warns, Warning{Row: row, Field: c.field,
					Desc: fmt.Sprintf("unparseable value %q treated as 0", c.value)})
			}
			if d.IsNegative() {
				warns = append(warns, Warning{Row: row, Field: c.field,
					Desc: fmt.Sprintf("negative value %s", d)})
			}
		}

		bidQty, _ := coerce.Number(li.BidQty)
		toDateQty, _ := coerce.Number(li.ToDateQty)
		if !bidQty.IsZero() && toDateQty.GreaterThan(bidQty) {
			warns = append(warns, Warning{Row: row, Field: ColToDateQty,
				Desc: fmt.Sprintf("to-date quantity %s exceeds bid quantity %s; percent complete clamps at 100", toDateQty, bidQty)})
		}
	}
	return warns
}
