// Package coerce converts raw text cells to numbers with uniform,
// fail-soft semantics. Parsing never returns an error: a cell either
// yields its value, the zero default, or is reported absent.
package coerce

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// State tells how a coerced value was obtained.
type State int

const (
	// Exact means the cell parsed cleanly.
	Exact State = iota
	// Defaulted means the cell held something unparseable and the zero
	// value was substituted.
	Defaulted
	// Absent means the cell was empty or missing entirely.
	Absent
)

// Number coerces a cell to a decimal. Empty input is Absent, unparseable
// input is Defaulted; both yield zero.
func Number(s string) (decimal.Decimal, State) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, Absent
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, Defaulted
	}
	return d, Exact
}

// Int coerces a cell to an integer under the same rules as Number.
func Int(s string) (int, State) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Absent
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Defaulted
	}
	return n, Exact
}
