package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payapp-dev/payapp/internal/model"
)

func TestCheckFlagsUnparseableCells(t *testing.T) {
	warns := Check([]model.LineItem{
		{Description: "bad price", Unit: "EA", UnitPrice: "abc", BidQty: "10", ToDateQty: "2"},
	})
	require.Len(t, warns, 1)
	assert.Equal(t, 1, warns[0].Row)
	assert.Equal(t, ColUnitPrice, warns[0].Field)
	assert.Contains(t, warns[0].Desc, `"abc"`)
}

func TestCheckFlagsNegativeAndOverrun(t *testing.T) {
	warns := Check([]model.LineItem{
		{Description: "negative", Unit: "EA", UnitPrice: "-5", BidQty: "10", ToDateQty: "2"},
		{Description: "overrun", Unit: "EA", UnitPrice: "5", BidQty: "10", ToDateQty: "15"},
	})
	require.Len(t, warns, 2)
	assert.Equal(t, ColUnitPrice, warns[0].Field)
	assert.Contains(t, warns[0].Desc, "negative")
	assert.Equal(t, 2, warns[1].Row)
	assert.Contains(t, warns[1].Desc, "clamps at 100")
}

func TestCheckCleanItems(t *testing.T) {
	warns := Check([]model.LineItem{
		{Description: "fine", Unit: "LF", UnitPrice: "42.50", BidQty: "1200", ThisPeriodQty: "310", ToDateQty: "850"},
		{Description: "empty cells fine", Unit: "LS"},
	})
	assert.Empty(t, warns)
}
