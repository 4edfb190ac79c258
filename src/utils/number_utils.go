package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	leadingDecimalRe = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)`)
	leadingIntRe     = regexp.MustCompile(`^[+-]?\d+`)
)

// cleanNumeric drops surrounding whitespace and quote characters.
func cleanNumeric(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

// ParseDecimalOrZero reads the leading decimal number of s. Anything without
// a numeric prefix yields zero, never an error. Exponents are not part of
// the prefix: "1.5e2" is 1.5.
func ParseDecimalOrZero(s string) decimal.Decimal {
	m := leadingDecimalRe.FindString(cleanNumeric(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseIntOrZero reads the leading integer of s ("12.7" is 12). Anything
// without a numeric prefix, or out of range, yields zero.
func ParseIntOrZero(s string) int64 {
	m := leadingIntRe.FindString(cleanNumeric(s))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// RoundToCents rounds half away from zero to two decimal places.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmountGerman renders d with two decimals and a comma separator, e.g. "1234,50".
func FormatAmountGerman(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
