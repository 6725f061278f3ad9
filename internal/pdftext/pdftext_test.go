package pdftext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubBackend struct {
	name  string
	text  string
	err   error
	panic bool
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) ExtractText(string) (string, error) {
	if s.panic {
		panic("corrupt xref table")
	}
	return s.text, s.err
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	c := NewChain(nil,
		&stubBackend{name: "a", text: "page one" + PageBreak},
		&stubBackend{name: "b", text: "should not be reached"},
	)
	assert.Equal(t, "page one"+PageBreak, c.ExtractText("x.pdf"))
}

func TestChainFallsBackOnError(t *testing.T) {
	c := NewChain(nil,
		&stubBackend{name: "a", err: errors.New("bad header")},
		&stubBackend{name: "b", text: "recovered text"},
	)
	assert.Equal(t, "recovered text", c.ExtractText("x.pdf"))
}

func TestChainFallsBackOnEmptyText(t *testing.T) {
	c := NewChain(nil,
		&stubBackend{name: "a", text: "   \n"},
		&stubBackend{name: "b", text: "second try"},
	)
	assert.Equal(t, "second try", c.ExtractText("x.pdf"))
}

func TestChainAbsorbsPanics(t *testing.T) {
	c := NewChain(nil,
		&stubBackend{name: "a", panic: true},
		&stubBackend{name: "b", text: "still standing"},
	)
	assert.NotPanics(t, func() {
		assert.Equal(t, "still standing", c.ExtractText("x.pdf"))
	})
}

func TestChainAllFailYieldsEmpty(t *testing.T) {
	c := NewChain(nil,
		&stubBackend{name: "a", err: errors.New("nope")},
		&stubBackend{name: "b", panic: true},
	)
	assert.Equal(t, "", c.ExtractText("x.pdf"))
}

func TestChainNoBackends(t *testing.T) {
	c := NewChain(nil)
	assert.Equal(t, "", c.ExtractText("x.pdf"))
}

func TestChainFromNames(t *testing.T) {
	c := ChainFromNames(nil, []string{"dslipak", "ledongthuc"})
	if assert.Len(t, c.backends, 2) {
		assert.Equal(t, "dslipak", c.backends[0].Name())
		assert.Equal(t, "ledongthuc", c.backends[1].Name())
	}

	// Unknown-only falls back to the default ordering.
	c = ChainFromNames(nil, []string{"pdfplumber"})
	if assert.Len(t, c.backends, 2) {
		assert.Equal(t, "ledongthuc", c.backends[0].Name())
	}
}
