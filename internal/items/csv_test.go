package items

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payapp-dev/payapp/internal/model"
)

func TestReadByHeaderName(t *testing.T) {
	// Columns out of canonical order, with an extra one.
	in := "unit,description,to_date_qty,unit_price,job_code\nLF,Storm sewer,850,42.50,J-104\n"
	got, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Storm sewer", got[0].Description)
	assert.Equal(t, "LF", got[0].Unit)
	assert.Equal(t, "42.50", got[0].UnitPrice)
	assert.Equal(t, "850", got[0].ToDateQty)
	// Absent columns read as empty, computing to zero later.
	assert.Equal(t, "", got[0].BidQty)
	assert.Equal(t, "", got[0].ThisPeriodQty)
	assert.Equal(t, "", got[0].Notes)
}

func TestReadEmpty(t *testing.T) {
	got, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadHeaderOnly(t *testing.T) {
	got, err := Read(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTrip(t *testing.T) {
	in := []model.LineItem{
		{Description: "Mobilization", Unit: "LS", UnitPrice: "100000", BidQty: "0", ThisPeriodQty: "0.10", ToDateQty: "0.45", Notes: ""},
		{Description: "Pipe, stored", Unit: "LF", UnitPrice: "42.50", BidQty: "1200", ThisPeriodQty: "0", ToDateQty: "300", Notes: "MOH"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), "description,"))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, in, got)
}

func TestWriteComputed(t *testing.T) {
	computed := Compute([]model.LineItem{
		{Description: "Pipe", Unit: "LF", UnitPrice: "42.50", BidQty: "1200", ThisPeriodQty: "310", ToDateQty: "850"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteComputed(&buf, computed))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ComputedHeader, lines[0])
	// Derived cells are plain numbers with 2 decimal places, no
	// currency formatting.
	assert.Contains(t, lines[1], "13175.00")
	assert.Contains(t, lines[1], "36125.00")
	assert.Contains(t, lines[1], "70.83")
}
