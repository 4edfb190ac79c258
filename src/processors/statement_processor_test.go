package processors

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/autaxy/src/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleReport() *models.ReportData {
	txs := []models.Transaction{
		{Title: "Example Pro", Country: "US", SKU: "com.example.pro", Quantity: 3, PartnerShare: d("10.00"), CustomerPrice: d("14.97"), OriginalCurrency: "USD"},
		{Title: "App Store Sales", Country: "Germany", SKU: "App Store", Quantity: 2, PartnerShare: d("5.00"), CustomerPrice: d("6.00"), OriginalCurrency: "EUR"},
		{Title: "Example Pro", Country: "DE", Quantity: -1, PartnerShare: d("-3.33")},
	}
	return &models.ReportData{
		Dialect:      models.DialectFD,
		ReportID:     "APPLE30062025",
		StartDate:    "01.06.2025",
		EndDate:      "30.06.2025",
		Transactions: txs,
		Summary:      Summarize(txs),
	}
}

func TestStatementLines(t *testing.T) {
	issued := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	st := NewStatementProcessor().Build(sampleReport(), models.DefaultBusinessSettings(), issued)

	require.Len(t, st.Lines, 3)

	first := st.Lines[0]
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, "Example Pro - US (com.example.pro) [14,97 USD]", first.Description)
	assert.Equal(t, "3", first.Quantity)
	assert.Equal(t, models.UnitPiece, first.Unit)
	assert.Equal(t, "3,33", first.UnitPriceDisplay)
	assert.Equal(t, "10,00", first.TotalDisplay)
	assert.False(t, first.Refund)

	assert.Equal(t, "App Store Sales - Germany (App Store)", st.Lines[1].Description, "EUR origin is not repeated")
	assert.Equal(t, "2,50", st.Lines[1].UnitPriceDisplay)

	refund := st.Lines[2]
	assert.Equal(t, "Example Pro - DE", refund.Description)
	assert.Equal(t, "-", refund.Quantity)
	assert.Equal(t, models.UnitCorrection, refund.Unit)
	assert.Equal(t, "-3,33", refund.UnitPriceDisplay)
	assert.True(t, refund.Refund)

	assert.Equal(t, "11,67", st.SubtotalDisplay)
	assert.Equal(t, "11,67", st.GrandTotalDisplay)
	assert.Equal(t, models.BookingRevenue, st.Booking)
	assert.Equal(t, models.AccountRevenue, st.BookingAccount)
	assert.Equal(t, "30.06.2025", st.Date)
	assert.Equal(t, "01.06.2025", st.PeriodStart)
	assert.Equal(t, issued, st.IssuedAt)
	assert.Equal(t, "IE9700053D", st.Issuer.VATID)
}

func TestStatementUsesAuthoritativeTotal(t *testing.T) {
	report := sampleReport()
	acc := NewSummaryAccumulator()
	for _, tx := range report.Transactions {
		acc.Add(tx)
	}
	acc.Override(d("-1.00"))
	report.Summary = acc.Summary()

	st := NewStatementProcessor().Build(report, models.DefaultBusinessSettings(), time.Now())
	assert.Equal(t, "11,67", st.SubtotalDisplay)
	assert.Equal(t, "-1,00", st.GrandTotalDisplay)
	assert.Equal(t, models.BookingRefund, st.Booking)
	assert.Equal(t, models.AccountRefund, st.BookingAccount)
}

func TestStatementRecipient(t *testing.T) {
	settings := models.BusinessSettings{
		CompanyName:   "Example Apps GmbH",
		Street:        "Hauptstr. 1",
		ZipCity:       "10115 Berlin",
		Country:       "Germany",
		VATID:         "DE123456789",
		AppleVendorID: "12345678",
	}
	st := NewStatementProcessor().Build(sampleReport(), settings, time.Now())

	assert.Equal(t, "Example Apps GmbH", st.Recipient.Name)
	assert.Equal(t, []string{"Hauptstr. 1", "10115 Berlin", "Germany"}, st.Recipient.Lines)
	assert.Equal(t, "DE123456789", st.Recipient.VATID)
	assert.Equal(t, "12345678", st.VendorID)

	st = NewStatementProcessor().Build(sampleReport(), models.DefaultBusinessSettings(), time.Now())
	assert.Equal(t, []string{"Germany"}, st.Recipient.Lines)
	assert.Empty(t, st.VendorID)
}

func TestStatementDoesNotMutateReport(t *testing.T) {
	report := sampleReport()
	before := *report
	before.Transactions = append([]models.Transaction(nil), report.Transactions...)

	NewStatementProcessor().Build(report, models.DefaultBusinessSettings(), time.Now())
	assert.Equal(t, before.Transactions, report.Transactions)
	assert.Equal(t, before.Summary, report.Summary)
}

func TestStatementEmptyReport(t *testing.T) {
	report := &models.ReportData{Summary: Summarize(nil)}
	st := NewStatementProcessor().Build(report, models.DefaultBusinessSettings(), time.Now())
	assert.Empty(t, st.Lines)
	assert.NotNil(t, st.Lines)
	assert.Equal(t, models.BookingRevenue, st.Booking)
	assert.Equal(t, "0,00", st.GrandTotalDisplay)
}
