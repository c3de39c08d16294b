package utils_test

import (
	"testing"

	"github.com/SscSPs/crm_pos_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"grouping", decimal.RequireFromString("1234.5"), "USD", "USD 1,234.50"},
		{"zero", decimal.Zero, "EUR", "EUR 0.00"},
		{"rounding", decimal.RequireFromString("999.999"), "USD", "USD 1,000.00"},
		{"no currency", decimal.NewFromInt(100), "", "100.00"},
		{"negative", decimal.RequireFromString("-1234.5"), "USD", "USD -1,234.50"},
		{"negative rounds to zero", decimal.RequireFromString("-0.001"), "USD", "USD 0.00"},
		{"beyond float64 precision", decimal.RequireFromString("90071992547409.93"), "USD", "USD 90,071,992,547,409.93"},
		{"largest numeric(20,2)", decimal.RequireFromString("123456789012345678.91"), "USD", "USD 123,456,789,012,345,678.91"},
		{"beyond int64", decimal.RequireFromString("12345678901234567890.10"), "USD", "USD 12,345,678,901,234,567,890.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatMoney(tt.amount, tt.currency))
		})
	}
}

func TestFormatOptionalMoney(t *testing.T) {
	assert.Equal(t, "", utils.FormatOptionalMoney(nil, "USD"))
	v := decimal.NewFromInt(300)
	assert.Equal(t, "USD 300.00", utils.FormatOptionalMoney(&v, "USD"))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
