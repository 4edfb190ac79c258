package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportImport is the history record kept for every distinct parsed report.
// It carries counts and totals only, never line items.
type ReportImport struct {
	ID                string          `json:"id"`
	ReportID          string          `json:"report_id"`
	Dialect           Dialect         `json:"dialect"`
	VendorName        string          `json:"vendor_name"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	RowCount          int             `json:"row_count"`
	TotalPartnerShare decimal.Decimal `json:"total_partner_share"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ContentHash       string          `json:"content_hash"`
	CreatedAt         time.Time       `json:"created_at"`
}
