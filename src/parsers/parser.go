package parsers

import "github.com/username/autaxy/src/models"

// Parser turns raw report text into the canonical report model.
type Parser interface {
	Parse(text string) (*models.ReportData, error)
}
