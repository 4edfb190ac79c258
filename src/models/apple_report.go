package models

import "github.com/shopspring/decimal"

// Dialect identifies one of the two Apple report text layouts.
type Dialect string

const (
	// DialectCSV is the comma-delimited monthly "Payments and Financial Reports" export.
	DialectCSV Dialect = "csv"
	// DialectFD is the tab-delimited detailed financial report.
	DialectFD Dialect = "fd"
)

// Transaction is one sold or refunded unit line of a report.
// Dates are canonical DD.MM.YYYY strings, or the source value when it had
// no recognizable shape.
type Transaction struct {
	TransactionDate  string          `json:"transaction_date"`
	SettlementDate   string          `json:"settlement_date"`
	SKU              string          `json:"sku"`
	Title            string          `json:"title"`
	Country          string          `json:"country"`
	Quantity         int64           `json:"quantity"`      // zero or negative for refunds and adjustments
	PartnerShare     decimal.Decimal `json:"partner_share"` // EUR, signed
	CustomerPrice    decimal.Decimal `json:"customer_price"`
	Currency         string          `json:"currency"`
	OriginalCurrency string          `json:"original_currency,omitempty"`
}

// ReportSummary holds the report level aggregates.
type ReportSummary struct {
	// TotalPartnerShare is the authoritative printed total when the source
	// has one, otherwise the sum of all partner shares.
	TotalPartnerShare decimal.Decimal `json:"total_partner_share"`
	// Subtotal is always the computed per-row sum.
	Subtotal  decimal.Decimal            `json:"subtotal"`
	ByCountry map[string]decimal.Decimal `json:"by_country"`
	// TotalFromReport is set when TotalPartnerShare was read from the
	// report's printed total, even if it equals Subtotal.
	TotalFromReport bool `json:"total_from_report"`
}

// HasOverride reports whether the total came from the report rather than the row sum.
func (s ReportSummary) HasOverride() bool {
	return s.TotalFromReport
}

// ReportData is the canonical result of one parse. It is built once and
// must not be mutated by consumers.
type ReportData struct {
	Dialect      Dialect       `json:"dialect"`
	VendorName   string        `json:"vendor_name"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	ReportID     string        `json:"report_id"`
	Transactions []Transaction `json:"transactions"`
	Summary      ReportSummary `json:"summary"`
}
