// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// currencySymbol prefixes all money output. Set once at startup from config.
var currencySymbol = "£"

// SetCurrency sets the symbol used by FormatMoney.
func SetCurrency(symbol string) {
	if symbol != "" {
		currencySymbol = symbol
	}
}

// FormatMoney formats a currency amount with thousands separators and
// exactly two decimals. e.g. 1234.5 -> "£1,234.50"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}

	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	return currencySymbol + groupThousands(s[:dot]) + s[dot:]
}

// FormatNumber adds comma separators to an integer.
// e.g. 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats percent points with one decimal.
// e.g. 42.35 -> "42.4%"
func FormatPercent(pts float64) string {
	return fmt.Sprintf("%.1f%%", pts)
}

// FormatAPR renders an annual rate for display. Whole rates drop the
// decimals. e.g. 22.9 -> "22.9%", 0 -> "0%"
func FormatAPR(apr float64) string {
	if apr == float64(int64(apr)) {
		return fmt.Sprintf("%.0f%%", apr)
	}
	return fmt.Sprintf("%.1f%%", apr)
}

// FormatMonths renders a month count as years and months.
// e.g. 27 -> "2y 3m", 7 -> "7m"
func FormatMonths(n int) string {
	if n <= 0 {
		return "0m"
	}

	years := n / 12
	months := n % 12

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%dy %dm", years, months)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", months)
	}
}
