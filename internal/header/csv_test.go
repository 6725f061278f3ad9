package header

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payapp-dev/payapp/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strp(s string) *string { return &s }

func TestRoundTrip(t *testing.T) {
	no := 12
	contract := dec("1250000")
	rate := dec("5")
	rec := model.HeaderRecord{
		PayAppNo:               &no,
		Project:                strp("Riverside Lift Station Rehab"),
		Contractor:             strp("Delta Underground LLC"),
		WorkFrom:               strp("1/1/2025"),
		WorkTo:                 strp("1/31/2025"),
		OriginalContractAmount: &contract,
		RetainageRatePercent:   &rate,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rec))
	assert.True(t, strings.HasPrefix(buf.String(), "pay_app_no,"))

	got, ok, err := Read(&buf)
	require.NoError(t, err)
	require.True(t, ok)

	require.NotNil(t, got.PayAppNo)
	assert.Equal(t, 12, *got.PayAppNo)
	require.NotNil(t, got.Project)
	assert.Equal(t, "Riverside Lift Station Rehab", *got.Project)
	require.NotNil(t, got.WorkFrom)
	assert.Equal(t, "1/1/2025", *got.WorkFrom)
	require.NotNil(t, got.OriginalContractAmount)
	assert.True(t, got.OriginalContractAmount.Equal(contract))
	require.NotNil(t, got.RetainageRatePercent)
	assert.True(t, got.RetainageRatePercent.Equal(rate))

	// Unset fields survive as nil.
	assert.Nil(t, got.Owner)
	assert.Nil(t, got.SubmittedTotalEarnedToDate)
	assert.Nil(t, got.AmountDueThisApplication)
}

func TestReadNoDataRow(t *testing.T) {
	_, ok, err := Read(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.False(t, ok, "header-only file is the empty-header condition")

	_, ok, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadBadCellsBecomeNil(t *testing.T) {
	in := "pay_app_no,project,original_contract_amount\nABC,Job,not-a-number\n"
	got, ok, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Nil(t, got.PayAppNo, "non-integer pay app number discarded")
	assert.Nil(t, got.OriginalContractAmount, "unparseable amount discarded")
	require.NotNil(t, got.Project)
	assert.Equal(t, "Job", *got.Project)
}

func TestReadColumnOrderIndependent(t *testing.T) {
	in := "project,pay_app_no\nPump Station,7\n"
	got, ok, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.PayAppNo)
	assert.Equal(t, 7, *got.PayAppNo)
}
