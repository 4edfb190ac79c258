package apple

import "strings"

// SplitLines trims the text and splits it into lines, dropping the carriage
// return of CRLF line endings.
func SplitLines(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitCSVLine splits one comma-delimited line. A double quote toggles quoted
// mode, in which commas are literal; quote characters are dropped from the
// values. Doubled quotes are not treated as an escaped quote.
func SplitCSVLine(line string) []string {
	var (
		values   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(values, current.String())
}

// SplitTabLine splits one tab-delimited line. Empty columns are kept so
// positional offsets stay stable.
func SplitTabLine(line string) []string {
	return strings.Split(line, "\t")
}

// field returns values[i] trimmed, or "" when the row is too short.
func field(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}
