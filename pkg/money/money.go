// Package money handles monetary amounts as integer minor units (centavos).
// Amounts never exist as floats outside of display formatting, so arithmetic
// on them is exact.
package money

import (
	"strconv"
	"strings"
)

// Cents is a monetary amount in minor currency units.
type Cents int64

// FormatBRL renders an amount in Brazilian real notation with the currency
// symbol: 1234 → "R$ 12,34", 123456789 → "R$ 1.234.567,89".
func FormatBRL(v Cents) string {
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	b.WriteString("R$ ")
	b.WriteString(group(int64(v) / 100))
	b.WriteByte(',')
	frac := int64(v) % 100
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// ParseBRL extracts the amount in cents from a formatted string. Every
// non-digit character is ignored, mirroring free-form user input: "R$ 12,34",
// "12,34" and "1234" all parse to 1234. A leading minus sign negates.
func ParseBRL(s string) Cents {
	neg := strings.HasPrefix(strings.TrimSpace(s), "-")
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	if neg {
		n = -n
	}
	return Cents(n)
}

// group renders n with '.' thousands separators (pt-BR convention).
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
