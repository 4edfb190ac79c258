package apple

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/processors"
	"github.com/username/autaxy/src/utils"
)

// Layout of the monthly "Payments and Financial Reports" CSV export.
const (
	csvFirstDataLine = 3 // rows start on the fourth line
	csvTotalLine     = 7 // line carrying the printed "<amount> EUR" total
	csvMinColumns    = 8

	csvColCountry  = 0 // "Country (XXX)" composite
	csvColUnits    = 1
	csvColEarned   = 2 // gross customer amount
	csvColProceeds = 9 // partner share in EUR
	csvColCurrency = 10

	csvEndOfData = ",,,"

	csvSKU   = "App Store"
	csvTitle = "App Store Sales"
)

var (
	csvPeriodRe = regexp.MustCompile(`\((\w+),\s*(\d{4})\)`)
	csvTotalRe  = regexp.MustCompile(`"([\d.]+)\s*EUR"`)
)

func parseCSVDialect(lines []string) *models.ReportData {
	report := &models.ReportData{
		Dialect:      models.DialectCSV,
		Transactions: []models.Transaction{},
	}
	applyCSVPeriod(report, lines[0])

	acc := processors.NewSummaryAccumulator()
	for i := csvFirstDataLine; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, csvEndOfData) {
			break
		}

		values := SplitCSVLine(line)
		if len(values) < csvMinColumns {
			logger.L.Debug("Apple CSV Parser: Skipping row with too few columns", "line", i, "columns", len(values))
			continue
		}

		tx := csvTransaction(values, report.EndDate)
		report.Transactions = append(report.Transactions, tx)
		acc.Add(tx)
	}

	if total, ok := csvAuthoritativeTotal(lines); ok {
		acc.Override(total)
	}
	report.Summary = acc.Summary()
	return report
}

// applyCSVPeriod derives the report id and period from a "(Month, Year)"
// token in the first line. The rows are assumed to belong to that month.
func applyCSVPeriod(report *models.ReportData, header string) {
	m := csvPeriodRe.FindStringSubmatch(header)
	if m == nil {
		return
	}
	month, year := utils.MonthNumber(m[1]), m[2]
	monthNum, _ := strconv.Atoi(month)
	yearNum, _ := strconv.Atoi(year)
	lastDay := utils.LastDayOfMonth(yearNum, time.Month(monthNum))

	report.ReportID = fmt.Sprintf("APPLE-%s-%s", year, month)
	report.StartDate = fmt.Sprintf("01.%s.%s", month, year)
	report.EndDate = fmt.Sprintf("%02d.%s.%s", lastDay, month, year)
}

func csvTransaction(values []string, periodEnd string) models.Transaction {
	country, originalCurrency, ok := utils.SplitCountryCurrency(field(values, csvColCountry))
	if !ok {
		originalCurrency = "EUR"
	}
	currency := field(values, csvColCurrency)
	if currency == "" {
		currency = "EUR"
	}
	return models.Transaction{
		TransactionDate:  periodEnd,
		SettlementDate:   periodEnd,
		SKU:              csvSKU,
		Title:            csvTitle,
		Country:          country,
		Quantity:         utils.ParseIntOrZero(field(values, csvColUnits)),
		PartnerShare:     utils.ParseDecimalOrZero(field(values, csvColProceeds)),
		CustomerPrice:    utils.ParseDecimalOrZero(field(values, csvColEarned)),
		Currency:         currency,
		OriginalCurrency: originalCurrency,
	}
}

func csvAuthoritativeTotal(lines []string) (decimal.Decimal, bool) {
	if len(lines) <= csvTotalLine || !strings.Contains(lines[csvTotalLine], "EUR") {
		return decimal.Zero, false
	}
	m := csvTotalRe.FindStringSubmatch(lines[csvTotalLine])
	if m == nil {
		return decimal.Zero, false
	}
	return utils.ParseDecimalOrZero(m[1]), true
}
