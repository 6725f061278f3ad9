// Package report serializes a reviewed pay application for export: a
// machine-readable CSV of computed items and a three-sheet XLSX bundle
// for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/payapp-dev/payapp/internal/header"
	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/model"
)

// Sheet names in the XLSX bundle.
const (
	SheetHeader        = "Header"
	SheetItemsAll      = "Items (all)"
	SheetItemsFiltered = "Items (filtered)"
)

const (
	moneyNumFmt     = "$#,##0.00"
	moneyColWidth   = 16.0
	defaultColWidth = 14.0
)

// Bundle is everything one export carries.
type Bundle struct {
	Header        model.HeaderRecord
	AllItems      []model.ComputedItem
	FilteredItems []model.ComputedItem
}

// WriteItemsCSV writes the filtered computed items as UTF-8 CSV with
// raw numbers. This is the machine-readable export.
func WriteItemsCSV(w io.Writer, filtered []model.ComputedItem) error {
	return items.WriteComputed(w, filtered)
}

// BuildWorkbook renders the XLSX report bundle. Columns whose name
// contains "amount" or "unit_price" get currency formatting and a
// wider column; everything else a fixed display width.
func BuildWorkbook(b Bundle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetHeader); err != nil {
		return nil, fmt.Errorf("naming header sheet: %w", err)
	}
	for _, name := range []string{SheetItemsAll, SheetItemsFiltered} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(moneyNumFmt)})
	if err != nil {
		return nil, fmt.Errorf("creating money style: %w", err)
	}

	if err := writeSheet(f, SheetHeader, header.Columns(), [][]any{headerRow(b.Header)}, moneyStyle); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetItemsAll, itemColumns(), itemRows(b.AllItems), moneyStyle); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetItemsFiltered, itemColumns(), itemRows(b.FilteredItems), moneyStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func isMoneyColumn(name string) bool {
	return strings.Contains(name, "amount") || strings.Contains(name, "unit_price")
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]any, moneyStyle int) error {
	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if isMoneyColumn(name) {
			if err := f.SetColStyle(sheet, col, moneyStyle); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if err := f.SetColWidth(sheet, col, col, moneyColWidth); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		} else if err := f.SetColWidth(sheet, col, col, defaultColWidth); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}

// headerRow lays out one HeaderRecord in header.Columns() order. Nil
// fields stay blank.
func headerRow(h model.HeaderRecord) []any {
	return []any{
		intVal(h.PayAppNo),
		textVal(h.Project),
		textVal(h.Owner),
		textVal(h.Engineer),
		textVal(h.Contractor),
		textVal(h.WorkFrom),
		textVal(h.WorkTo),
		textVal(h.InvoiceDate),
		moneyVal(h.OriginalContractAmount),
		moneyVal(h.SubmittedTotalEarnedToDate),
		moneyVal(h.PercentCompleteValue),
		moneyVal(h.RetainageRatePercent),
		moneyVal(h.RetainageToDate),
		moneyVal(h.ReviewedAmountThisApp),
		moneyVal(h.PreviousPayments),
		moneyVal(h.AmountDueThisApplication),
	}
}

func itemColumns() []string {
	return strings.Split(items.ComputedHeader, ",")
}

func itemRows(computed []model.ComputedItem) [][]any {
	rows := make([][]any, 0, len(computed))
	for _, ci := range computed {
		rows = append(rows, []any{
			ci.Description,
			ci.Unit,
			ci.UnitPrice.InexactFloat64(),
			ci.BidQty.InexactFloat64(),
			ci.ThisPeriodQty.InexactFloat64(),
			ci.ToDateQty.InexactFloat64(),
			ci.Notes,
			ci.ThisPeriodAmount.InexactFloat64(),
			ci.ToDateAmount.InexactFloat64(),
			ci.PctComplete.InexactFloat64(),
		})
	}
	return rows
}

func intVal(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func textVal(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func moneyVal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

func ptr(s string) *string { return &s }
