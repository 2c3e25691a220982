// Package utils provides shared helpers for text, numbers, and logging.
package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Truncate returns s cut to maxLen characters with "..." appended when it was cut.
// Lengths are counted in runes. If maxLen is 0 or negative, s is returned unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}

// PadRight pads s with spaces to width runes. Longer strings are returned as-is.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// GroupThousands formats a non-negative amount with comma thousands separators,
// dropping the fractional part when it is zero ("50000" → "50,000", "1299.5" → "1,299.50").
func GroupThousands(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if frac != "00" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
