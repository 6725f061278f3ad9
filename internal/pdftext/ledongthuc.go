package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LedongthucBackend extracts text with github.com/ledongthuc/pdf
// (pure Go, no CGO). It is the primary backend.
type LedongthucBackend struct{}

// Name returns the backend name.
func (b *LedongthucBackend) Name() string { return "ledongthuc" }

// ExtractText reads every page's plain text, page-break delimited.
// Pages that cannot be read are skipped rather than failing the file.
func (b *LedongthucBackend) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString(PageBreak)
	}
	return sb.String(), nil
}
