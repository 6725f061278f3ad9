package pdftext

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// DslipakBackend extracts text with github.com/dslipak/pdf. Kept as the
// secondary backend: it handles some files the primary rejects.
type DslipakBackend struct{}

// Name returns the backend name.
func (b *DslipakBackend) Name() string { return "dslipak" }

// ExtractText reads every page's plain text, page-break delimited.
func (b *DslipakBackend) ExtractText(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

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
