// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBillions formats an amount in billions of USD.
// e.g., 1234.5 -> "$1,234.5B", -236.2 -> "-$236.2B"
func FormatBillions(v float64) string {
	if v < 0 {
		return "-" + FormatBillions(-v)
	}
	whole := math.Floor(v)
	tenths := int64(math.Round((v - whole) * 10))
	if tenths == 10 {
		whole++
		tenths = 0
	}
	return fmt.Sprintf("$%s.%dB", FormatNumber(int64(whole)), tenths)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatYears formats a count of fiscal years.
func FormatYears(n int) string {
	if n == 1 {
		return "1 yr"
	}
	return fmt.Sprintf("%d yrs", n)
}

// FormatSpan formats an inclusive-exclusive year span, e.g. "1993-2001".
func FormatSpan(start, end string) string {
	return start + "-" + end
}

// Truncate shortens s to at most n runes, ending with an ellipsis when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
