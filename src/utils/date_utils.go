package utils

import (
	"fmt"
	"strings"
	"time"
)

// DisplayDateLayout is the canonical DD.MM.YYYY display format.
const DisplayDateLayout = "02.01.2006"

var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// MonthNumber maps an English month name to its two digit number.
// Unknown names map to "01".
func MonthNumber(name string) string {
	if n, ok := monthNumbers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return n
	}
	return "01"
}

// LastDayOfMonth returns the number of days in the given month, leap years included.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatAppleDate converts MM/DD/YYYY to DD.MM.YYYY, zero padding day and
// month. Values that are not three slash separated parts are returned as is,
// so applying it twice is a no-op.
func FormatAppleDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return dateStr
	}
	return fmt.Sprintf("%s.%s.%s", padTwo(parts[1]), padTwo(parts[0]), parts[2])
}

func padTwo(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
