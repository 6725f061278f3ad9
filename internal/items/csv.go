package items

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/payapp-dev/payapp/internal/model"
)

// Raw column names, in canonical order.
const (
	ColDescription   = "description"
	ColUnit          = "unit"
	ColUnitPrice     = "unit_price"
	ColBidQty        = "bid_qty"
	ColThisPeriodQty = "this_period_qty"
	ColToDateQty     = "to_date_qty"
	ColNotes         = "notes"
)

// Derived column names appended by WriteComputed.
const (
	ColThisPeriodAmount = "this_period_amount"
	ColToDateAmount     = "to_date_amount"
	ColPctComplete      = "pct_complete"
)

// Header is the CSV header for a raw items file.
const Header = "description,unit,unit_price,bid_qty,this_period_qty,to_date_qty,notes"

// ComputedHeader is the CSV header for a computed items file: the raw
// columns followed by the derived ones.
const ComputedHeader = Header + ",this_period_amount,to_date_amount,pct_complete"

// Read parses an items CSV. Columns are located by header name, not
// position; columns missing from the file leave their cells empty,
// which the computation engine treats as zero. Extra columns are
// ignored.
func Read(r io.Reader) ([]model.LineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading items CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := indexColumns(records[0])
	cell := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []model.LineItem
	for _, rec := range records[1:] {
		out = append(out, model.LineItem{
			Description:   cell(rec, ColDescription),
			Unit:          cell(rec, ColUnit),
			UnitPrice:     cell(rec, ColUnitPrice),
			BidQty:        cell(rec, ColBidQty),
			ThisPeriodQty: cell(rec, ColThisPeriodQty),
			ToDateQty:     cell(rec, ColToDateQty),
			Notes:         cell(rec, ColNotes),
		})
	}
	return out, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// Write writes raw items with the canonical header.
func Write(w io.Writer, items []model.LineItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, li := range items {
		row := []string{li.Description, li.Unit, li.UnitPrice, li.BidQty, li.ThisPeriodQty, li.ToDateQty, li.Notes}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteComputed writes computed items: raw columns then derived ones.
// Monetary cells are plain fixed-point numbers, not currency formatted;
// this is the machine-readable form.
func WriteComputed(w io.Writer, items []model.ComputedItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ComputedHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, ci := range items {
		row := []string{
			ci.Description,
			ci.Unit,
			ci.UnitPrice.String(),
			ci.BidQty.String(),
			ci.ThisPeriodQty.String(),
			ci.ToDateQty.String(),
			ci.Notes,
			ci.ThisPeriodAmount.StringFixed(2),
			ci.ToDateAmount.StringFixed(2),
			ci.PctComplete.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
