package utils

import (
	"regexp"
	"strings"
)

var countryCurrencyRe = regexp.MustCompile(`^(.*?)\s*\(([A-Z]{3})\)$`)

// SplitCountryCurrency splits a "Country (XXX)" composite such as
// "Germany (USD)". Without a trailing three letter code the field is
// returned unchanged and ok is false.
func SplitCountryCurrency(field string) (country, currency string, ok bool) {
	m := countryCurrencyRe.FindStringSubmatch(field)
	if m == nil {
		return field, "", false
	}
	return m[1], m[2], true
}

// DigitsOnly drops every non digit rune, e.g. "30.06.2025" -> "30062025".
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
