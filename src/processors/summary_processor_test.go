package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/username/autaxy/src/models"
)

func tx(country, share string) models.Transaction {
	return models.Transaction{Country: country, PartnerShare: decimal.RequireFromString(share)}
}

func TestSummaryAccumulatorSumsInOrder(t *testing.T) {
	acc := NewSummaryAccumulator()
	acc.Add(tx("Germany", "4.50"))
	acc.Add(tx("France", "1.10"))
	acc.Add(tx("Germany", "-0.70"))

	s := acc.Summary()
	assert.Equal(t, "4.9", s.TotalPartnerShare.String())
	assert.Equal(t, "4.9", s.Subtotal.String())
	assert.False(t, s.HasOverride())
	assert.Equal(t, "3.8", s.ByCountry["Germany"].String())
	assert.Equal(t, "1.1", s.ByCountry["France"].String())
}

func TestSummaryAccumulatorOverrideKeepsSubtotal(t *testing.T) {
	acc := NewSummaryAccumulator()
	acc.Add(tx("Germany", "4.50"))
	acc.Override(decimal.RequireFromString("123.45"))

	s := acc.Summary()
	assert.Equal(t, "123.45", s.TotalPartnerShare.String())
	assert.Equal(t, "4.5", s.Subtotal.String())
	assert.True(t, s.HasOverride())
}

func TestSummaryAccumulatorEmpty(t *testing.T) {
	var acc SummaryAccumulator
	s := acc.Summary()
	assert.True(t, s.TotalPartnerShare.IsZero())
	assert.NotNil(t, s.ByCountry)
	assert.Empty(t, s.ByCountry)
}

func TestSummarizeReturnsIndependentMap(t *testing.T) {
	acc := NewSummaryAccumulator()
	acc.Add(tx("Spain", "2"))
	first := acc.Summary()
	first.ByCountry["Spain"] = decimal.NewFromInt(99)

	assert.Equal(t, "2", acc.Summary().ByCountry["Spain"].String())
	assert.Equal(t, "2", Summarize([]models.Transaction{tx("Spain", "2")}).Subtotal.String())
}

func TestSummaryAccumulatorOverrideEqualToSubtotal(t *testing.T) {
	acc := NewSummaryAccumulator()
	acc.Add(tx("Germany", "18.24"))
	acc.Override(decimal.RequireFromString("18.24"))

	s := acc.Summary()
	assert.True(t, s.TotalPartnerShare.Equal(s.Subtotal))
	assert.True(t, s.HasOverride(), "printed total applied even when it matches")
	assert.True(t, s.TotalFromReport)
}
