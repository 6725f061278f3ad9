// Package pdftext turns a PDF file into one text blob, page texts
// joined by an explicit page-break marker. Extraction backends are
// pluggable and tried in order; a backend that errors or panics is
// treated the same as one that found no text. Total failure yields an
// empty string, never an error, so callers can fall back to manual
// CSV entry.
package pdftext

import (
	"log/slog"
	"strings"
)

// PageBreak separates per-page text in the concatenated output.
const PageBreak = "\n\n---PAGE BREAK---\n\n"

// Backend extracts raw text from a PDF at path.
type Backend interface {
	Name() string
	ExtractText(path string) (string, error)
}

// Chain tries backends in order and keeps the first non-empty result.
type Chain struct {
	backends []Backend
	log      *slog.Logger
}

// NewChain creates a Chain over the given backends.
func NewChain(log *slog.Logger, backends ...Backend) *Chain {
	if log == nil {
		log = slog.Default()
	}
	return &Chain{backends: backends, log: log}
}

// DefaultChain returns the built-in backend ordering: ledongthuc first,
// dslipak second.
func DefaultChain(log *slog.Logger) *Chain {
	return NewChain(log, &LedongthucBackend{}, &DslipakBackend{})
}

// ChainFromNames builds a Chain honoring a configured backend order.
// Unknown names are skipped; an empty or all-unknown list falls back to
// the default ordering.
func ChainFromNames(log *slog.Logger, names []string) *Chain {
	var backends []Backend
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ledongthuc":
			backends = append(backends, &LedongthucBackend{})
		case "dslipak":
			backends = append(backends, &DslipakBackend{})
		}
	}
	if len(backends) == 0 {
		return DefaultChain(log)
	}
	return NewChain(log, backends...)
}

// ExtractText returns the document text from the first backend that
// produces any, or "" when every backend comes up empty.
func (c *Chain) ExtractText(path string) string {
	for _, b := range c.backends {
		text, err := tryBackend(b, path)
		if err != nil {
			c.log.Warn("pdf backend failed", "backend", b.Name(), "path", path, "error", err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text
		}
		c.log.Warn("pdf backend returned no text", "backend", b.Name(), "path", path)
	}
	return ""
}

// tryBackend calls a backend with panics converted to errors. The PDF
// readers panic on some malformed files, and a provider failure must
// never cross the chain boundary.
func tryBackend(b Backend, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &backendPanicError{backend: b.Name(), value: r}
		}
	}()
	return b.ExtractText(path)
}

type backendPanicError struct {
	backend string
	value   any
}

func (e *backendPanicError) Error() string {
	return "panic in " + e.backend + " backend"
}
