package apple

import (
	"strings"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/processors"
	"github.com/username/autaxy/src/utils"
)

// Layout of the tab-delimited detailed financial report.
const (
	fdLabelVendorName = "Vendor Name"
	fdLabelStartDate  = "Start Date"
	fdLabelEndDate    = "End Date"

	fdHeaderTransactionDate = "Transaction Date"
	fdHeaderPartnerShare    = "Partner Share"
	fdSummaryMarker         = "Country Of Sale" // trailing per-country summary section

	fdMinColumns = 11

	fdColTransactionDate  = 0
	fdColSettlementDate   = 1
	fdColSKU              = 3
	fdColTitle            = 4
	fdColCountry          = 8
	fdColQuantity         = 9
	fdColPartnerShare     = 10
	fdColCurrencyFallback = 11
	fdColCurrency         = 12
	fdColCustomerPrice    = 13
)

func parseFDDialect(lines []string) (*models.ReportData, error) {
	report := &models.ReportData{
		Dialect:      models.DialectFD,
		Transactions: []models.Transaction{},
	}
	applyFDMetadata(report, lines)

	headerIndex := findFDHeader(lines)
	if headerIndex < 0 {
		return nil, ErrNoTransactionData
	}

	acc := processors.NewSummaryAccumulator()
	for i := headerIndex + 1; i < len(lines); i++ {
		line := strings.Trim(lines[i], " \r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), fdSummaryMarker) {
			break
		}

		values := SplitTabLine(line)
		if len(values) < fdMinColumns {
			logger.L.Debug("Apple FD Parser: Skipping row with too few columns", "line", i, "columns", len(values))
			continue
		}

		tx := fdTransaction(values)
		report.Transactions = append(report.Transactions, tx)
		acc.Add(tx)
	}

	report.ReportID = "APPLE" + utils.DigitsOnly(report.EndDate)
	report.Summary = acc.Summary()
	return report, nil
}

// applyFDMetadata reads the "Label<TAB>value" header lines. A later
// occurrence of a label replaces an earlier one.
func applyFDMetadata(report *models.ReportData, lines []string) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, fdLabelVendorName):
			report.VendorName = field(SplitTabLine(line), 1)
		case strings.HasPrefix(line, fdLabelStartDate):
			report.StartDate = utils.FormatAppleDate(field(SplitTabLine(line), 1))
		case strings.HasPrefix(line, fdLabelEndDate):
			report.EndDate = utils.FormatAppleDate(field(SplitTabLine(line), 1))
		}
	}
}

func findFDHeader(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, fdHeaderTransactionDate) && strings.Contains(line, fdHeaderPartnerShare) {
			return i
		}
	}
	return -1
}

func fdTransaction(values []string) models.Transaction {
	currency := field(values, fdColCurrency)
	if currency == "" {
		currency = field(values, fdColCurrencyFallback)
	}
	if currency == "" {
		currency = "EUR"
	}
	return models.Transaction{
		TransactionDate: utils.FormatAppleDate(field(values, fdColTransactionDate)),
		SettlementDate:  utils.FormatAppleDate(field(values, fdColSettlementDate)),
		SKU:             field(values, fdColSKU),
		Title:           field(values, fdColTitle),
		Country:         field(values, fdColCountry),
		Quantity:        utils.ParseIntOrZero(field(values, fdColQuantity)),
		PartnerShare:    utils.ParseDecimalOrZero(field(values, fdColPartnerShare)),
		CustomerPrice:   utils.ParseDecimalOrZero(field(values, fdColCustomerPrice)),
		Currency:        currency,
	}
}
