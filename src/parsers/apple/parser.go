package apple

import (
	"fmt"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
)

// Source is the factory key for Apple reports.
const Source = "apple"

// Parser turns pasted or uploaded Apple report text into ReportData.
// It holds no state and is safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(text string) (*models.ReportData, error) {
	lines := SplitLines(text)
	dialect, err := detectDialect(lines)
	if err != nil {
		return nil, err
	}

	var report *models.ReportData
	switch dialect {
	case models.DialectCSV:
		report = parseCSVDialect(lines)
	case models.DialectFD:
		report, err = parseFDDialect(lines)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("apple parser: unsupported dialect %q", dialect)
	}

	logger.L.Debug("Apple Parser: report parsed",
		"dialect", report.Dialect,
		"reportID", report.ReportID,
		"rows", len(report.Transactions))
	return report, nil
}
