package processors

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/utils"
)

// Apple is the issuer of every self-billing statement.
var appleIssuer = models.Party{
	Name:  "Apple Distribution International Ltd.",
	Lines: []string{"Hollyhill Industrial Estate", "Hollyhill, Cork", "Republic of Ireland"},
	VATID: "IE9700053D",
}

// StatementProcessor renders a report into a layout neutral statement.
type StatementProcessor interface {
	Build(report *models.ReportData, settings models.BusinessSettings, issuedAt time.Time) models.Statement
}

type statementProcessorImpl struct{}

func NewStatementProcessor() StatementProcessor {
	return &statementProcessorImpl{}
}

// Build reads the report without modifying it.
func (p *statementProcessorImpl) Build(report *models.ReportData, settings models.BusinessSettings, issuedAt time.Time) models.Statement {
	lines := make([]models.StatementLine, 0, len(report.Transactions))
	subtotal := decimal.Zero
	for i, tx := range report.Transactions {
		lines = append(lines, statementLine(i+1, tx))
		subtotal = subtotal.Add(tx.PartnerShare)
	}

	grandTotal := report.Summary.TotalPartnerShare
	booking, account := models.BookingRevenue, models.AccountRevenue
	if grandTotal.IsNegative() {
		booking, account = models.BookingRefund, models.AccountRefund
	}

	return models.Statement{
		ReportID:          report.ReportID,
		Dialect:           report.Dialect,
		Date:              report.EndDate,
		PeriodStart:       report.StartDate,
		PeriodEnd:         report.EndDate,
		VendorID:          settings.AppleVendorID,
		Issuer:            appleIssuer,
		Recipient:         recipient(settings),
		Booking:           booking,
		BookingAccount:    account,
		Lines:             lines,
		Subtotal:          subtotal,
		SubtotalDisplay:   utils.FormatAmountGerman(subtotal),
		GrandTotal:        grandTotal,
		GrandTotalDisplay: utils.FormatAmountGerman(grandTotal),
		Currency:          "EUR",
		IssuedAt:          issuedAt,
	}
}

func statementLine(pos int, tx models.Transaction) models.StatementLine {
	description := tx.Title + " - " + tx.Country
	if tx.SKU != "" {
		description += " (" + tx.SKU + ")"
	}
	if tx.OriginalCurrency != "" && tx.OriginalCurrency != "EUR" {
		description += " [" + utils.FormatAmountGerman(tx.CustomerPrice) + " " + tx.OriginalCurrency + "]"
	}

	line := models.StatementLine{
		Position:     pos,
		Description:  description,
		Total:        tx.PartnerShare,
		TotalDisplay: utils.FormatAmountGerman(tx.PartnerShare),
	}
	if tx.Quantity > 0 {
		line.Quantity = strconv.FormatInt(tx.Quantity, 10)
		line.Unit = models.UnitPiece
		line.UnitPrice = utils.RoundToCents(tx.PartnerShare.Div(decimal.NewFromInt(tx.Quantity)))
	} else {
		// refunds and adjustments are booked as a single correction
		line.Quantity = "-"
		line.Unit = models.UnitCorrection
		line.UnitPrice = tx.PartnerShare
		line.Refund = true
	}
	line.UnitPriceDisplay = utils.FormatAmountGerman(line.UnitPrice)
	return line
}

func recipient(settings models.BusinessSettings) models.Party {
	var lines []string
	for _, l := range []string{settings.Street, settings.ZipCity, settings.Country} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return models.Party{Name: settings.CompanyName, Lines: lines, VATID: settings.VATID}
}
