// Package extract locates labeled field values inside unstructured pay
// application text. Every extractor is label-anchored: the value must
// appear within a short window after the label, which keeps generic
// tokens (a page full of dollar amounts) from binding to the wrong
// field. Extractors never fail; a miss is a zero result.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyToken matches an optionally $-prefixed amount: either a
// thousands-separated integer part with an optional 1-2 digit fraction,
// or a plain number without separators.
const moneyToken = `\$?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})|\d+(?:\.\d{1,2})?)`

// percentToken matches a 1-3 digit percentage with optional fraction,
// immediately followed by a percent sign.
const percentToken = `(\d{1,3}(?:\.\d{1,2})?)\s*%`

// dateToken matches D/M/Y or D-M-Y with 2-4 digit years.
const dateToken = `(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`

// proximityGap bounds how far past a label the value may sit. Tuned to
// survive OCR noise and layout jitter without bleeding into the next
// field's value.
const proximityGap = `.{0,50}?`

// DefaultTextLen is the capture limit for free-text fields.
const DefaultTextLen = 80

// findFirst compiles the composed pattern and returns the first capture
// group of the first match. A pattern that fails to compile is treated
// as a miss, never a panic.
func findFirst(pattern, text string) (string, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FindMoney returns the first monetary amount within the proximity
// window after the label alternation, thousands separators stripped.
func FindMoney(label, text string) (decimal.Decimal, bool) {
	raw, ok := findFirst(`(?i)(?:`+label+`)`+proximityGap+moneyToken, text)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// FindPercent returns the first percentage within the proximity window
// after the label. The value is returned as written: "12.5%" is 12.5.
func FindPercent(label, text string) (decimal.Decimal, bool) {
	raw, ok := findFirst(`(?i)(?:`+label+`)`+proximityGap+percentToken, text)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// FindText returns up to maxLen characters of same-line text following
// the label and an optional colon or dash separator, trimmed. maxLen <= 0
// falls back to DefaultTextLen.
func FindText(label, text string, maxLen int) (string, bool) {
	if maxLen <= 0 {
		maxLen = DefaultTextLen
	}
	pattern := `(?i)(?:` + label + `)\s*[:\-]?\s*([^\n\r]{1,` + strconv.Itoa(maxLen) + `})`
	raw, ok := findFirst(pattern, text)
	if !ok {
		return "", false
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	return s, true
}

// dateRangeRe finds a work-period phrase followed by two date tokens
// joined by a connector, each within a 20 character window.
var dateRangeRe = regexp.MustCompile(
	`(?i)(?:Work\s*from|Period\s*from)[^\d]*` + dateToken +
		`.{0,20}?(?:to|through|–|-).{0,20}?` + dateToken)

// FindDateRange returns the raw from/to date tokens of the billing
// period, as matched. No calendar normalization is attempted.
func FindDateRange(text string) (from, to string, ok bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
