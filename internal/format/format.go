// Package format renders values for human-readable CLI output. Machine
// exports never use these; they get raw numbers.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders a decimal as currency: 1234.5 -> "$1,234.50".
func Money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Percent renders a percentage value: 12.5 -> "12.5%".
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}
