package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UnitKind string

const (
	UnitPiece      UnitKind = "piece"
	UnitCorrection UnitKind = "correction"
)

type BookingKind string

const (
	BookingRevenue BookingKind = "revenue"
	BookingRefund  BookingKind = "refund"
)

// SKR03 accounts used for the booking hint.
const (
	AccountRevenue = "4400"
	AccountRefund  = "6700"
)

type Party struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
	VATID string   `json:"vat_id,omitempty"`
}

type StatementLine struct {
	Position         int             `json:"position"`
	Description      string          `json:"description"`
	Quantity         string          `json:"quantity"` // "-" for corrections
	Unit             UnitKind        `json:"unit"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	Total            decimal.Decimal `json:"total"`
	TotalDisplay     string          `json:"total_display"`
	Refund           bool            `json:"refund"`
}

// Statement is a layout neutral self-billing document built from a report.
type Statement struct {
	Number            string          `json:"number"`
	ReportID          string          `json:"report_id"`
	Dialect           Dialect         `json:"dialect"`
	Date              string          `json:"date"`
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	VendorID          string          `json:"vendor_id,omitempty"`
	Issuer            Party           `json:"issuer"`
	Recipient         Party           `json:"recipient"`
	Booking           BookingKind     `json:"booking"`
	BookingAccount    string          `json:"booking_account"`
	Lines             []StatementLine `json:"lines"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	GrandTotalDisplay string          `json:"grand_total_display"`
	Currency          string          `json:"currency"`
	IssuedAt          time.Time       `json:"issued_at"`
}
