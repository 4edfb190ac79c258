package apple

import (
	"fmt"
	"strings"

	"github.com/username/autaxy/src/models"
)

const (
	csvReportMarker = "iTunes Connect - Payments and Financial Reports"
	minReportLines  = 4
)

// DetectDialect decides which layout the report text uses.
func DetectDialect(text string) (models.Dialect, error) {
	return detectDialect(SplitLines(text))
}

func detectDialect(lines []string) (models.Dialect, error) {
	if len(lines) < minReportLines {
		return "", fmt.Errorf("%w: expected at least %d lines, got %d", ErrInvalidFormat, minReportLines, len(lines))
	}
	if strings.Contains(lines[0], csvReportMarker) {
		return models.DialectCSV, nil
	}
	return models.DialectFD, nil
}
