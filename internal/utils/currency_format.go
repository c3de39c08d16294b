package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount for display with thousands separators and two decimals,
// prefixed by the currency code when one is given. Digits come from the decimal itself, so
// amounts beyond float64 precision keep every digit.
// Example: 1234.5 with "USD" returns "USD 1,234.50"
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	whole, frac, _ := strings.Cut(amount.Abs().StringFixed(2), ".")
	s := groupThousands(whole) + "." + frac
	if amount.Round(2).IsNegative() {
		s = "-" + s
	}
	if currencyCode == "" {
		return s
	}
	return currencyCode + " " + s
}

// groupThousands inserts English thousands separators into a string of decimal digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return displayPrinter.Sprint(number.Decimal(n))
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatOptionalMoney is FormatMoney for nullable amounts; a nil amount renders as "".
func FormatOptionalMoney(amount *decimal.Decimal, currencyCode string) string {
	if amount == nil {
		return ""
	}
	return FormatMoney(*amount, currencyCode)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
