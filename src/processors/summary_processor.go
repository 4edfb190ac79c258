package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/autaxy/src/models"
)

// SummaryAccumulator folds transactions into a ReportSummary in source order.
// The zero value is ready to use.
type SummaryAccumulator struct {
	subtotal  decimal.Decimal
	byCountry map[string]decimal.Decimal
	override  *decimal.Decimal
}

func NewSummaryAccumulator() *SummaryAccumulator {
	return &SummaryAccumulator{}
}

// Add accumulates one transaction's partner share.
func (a *SummaryAccumulator) Add(tx models.Transaction) {
	a.subtotal = a.subtotal.Add(tx.PartnerShare)
	if a.byCountry == nil {
		a.byCountry = make(map[string]decimal.Decimal)
	}
	a.byCountry[tx.Country] = a.byCountry[tx.Country].Add(tx.PartnerShare)
}

// Override sets an authoritative total that takes precedence over the running sum.
func (a *SummaryAccumulator) Override(total decimal.Decimal) {
	a.override = &total
}

// Summary returns the aggregates gathered so far. The map is a fresh copy.
func (a *SummaryAccumulator) Summary() models.ReportSummary {
	byCountry := make(map[string]decimal.Decimal, len(a.byCountry))
	for country, amount := range a.byCountry {
		byCountry[country] = amount
	}
	total := a.subtotal
	if a.override != nil {
		total = *a.override
	}
	return models.ReportSummary{
		TotalPartnerShare: total,
		Subtotal:          a.subtotal,
		ByCountry:         byCountry,
		TotalFromReport:   a.override != nil,
	}
}

// Summarize is a convenience for building a summary from a finished slice.
func Summarize(txs []models.Transaction) models.ReportSummary {
	acc := NewSummaryAccumulator()
	for _, tx := range txs {
		acc.Add(tx)
	}
	return acc.Summary()
}
