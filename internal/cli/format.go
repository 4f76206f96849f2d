// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with thousands separators and two
// decimals: 72000 -> "72,000.00". Computation never rounds; this is
// display-side only.
func FormatMoney(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if math.IsNaN(v) {
		return "n/a"
	}

	neg := math.Signbit(v)
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatWeight formats a revenue weight as a percentage with six decimals:
// 0.6 -> "60.000000%".
func FormatWeight(w float64) string {
	if math.IsNaN(w) {
		return "n/a"
	}
	if math.IsInf(w, 0) {
		return "∞"
	}
	return fmt.Sprintf("%.6f%%", w*100)
}

// FormatMonths formats cover months with two decimals. Infinity shows as
// "∞" (zero monthly allocation with stock on hand) and NaN as "n/a".
func FormatMonths(m float64) string {
	if math.IsInf(m, 1) {
		return "∞"
	}
	if math.IsInf(m, -1) {
		return "-∞"
	}
	if math.IsNaN(m) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", m)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}
