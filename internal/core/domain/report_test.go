package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportDataUnmarshal_CoercesNonSequenceSections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"object-shaped section", `{"customers":{"bogus":1}}`},
		{"string-shaped section", `{"misc_sales":"x"}`},
		{"null section", `{"cash_payouts":null}`},
		{"number-shaped section", `{"digicel_wholesale":7}`},
		{"whole document not an object", `"x"`},
		{"empty object", `{}`},
		{"null document", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ReportData
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, []CustomerRow{}, d.Customers)
			assert.Equal(t, []WholesaleRow{}, d.DigicelWholesale)
			assert.Equal(t, []MiscSaleRow{}, d.MiscSales)
			assert.Equal(t, []CashPayoutRow{}, d.CashPayouts)
		})
	}
}

func TestReportDataUnmarshal_KeepsWellFormedSections(t *testing.T) {
	input := `{
		"customers":[{"name":"Corner Shop","digicel":10,"accounts_paid":"5"}],
		"misc_sales":"x",
		"cash_payouts":[{"details":"float","amount":30}]
	}`
	var d ReportData
	require.NoError(t, json.Unmarshal([]byte(input), &d))

	require.Len(t, d.Customers, 1)
	assert.Equal(t, "Corner Shop", d.Customers[0].Name)
	assert.True(t, d.Customers[0].Digicel.Equal(decimal.RequireFromString("10")))
	assert.True(t, d.Customers[0].AccountsPaid.Equal(decimal.RequireFromString("5")))
	require.Len(t, d.CashPayouts, 1)

	// The malformed section is dropped without taking the valid ones with it.
	assert.Equal(t, []MiscSaleRow{}, d.MiscSales)
	assert.Equal(t, []WholesaleRow{}, d.DigicelWholesale)
}
