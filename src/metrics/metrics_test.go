package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/username/autaxy/src/models"
)

func TestPrometheusRecorder(t *testing.T) {
	rec := NewPrometheusRecorder()

	parsedBefore := testutil.ToFloat64(ReportsParsed.WithLabelValues("fd"))
	rowsBefore := testutil.ToFloat64(ReportRows.WithLabelValues("fd"))
	rec.ReportParsed(models.DialectFD, 3)
	assert.Equal(t, parsedBefore+1, testutil.ToFloat64(ReportsParsed.WithLabelValues("fd")))
	assert.Equal(t, rowsBefore+3, testutil.ToFloat64(ReportRows.WithLabelValues("fd")))

	failBefore := testutil.ToFloat64(ReportParseFailures.WithLabelValues("invalid_format"))
	rec.ReportParseFailed("invalid_format")
	assert.Equal(t, failBefore+1, testutil.ToFloat64(ReportParseFailures.WithLabelValues("invalid_format")))

	stBefore := testutil.ToFloat64(StatementsGenerated.WithLabelValues("refund"))
	rec.StatementGenerated(models.DialectCSV, models.BookingRefund, decimal.RequireFromString("-1.005"))
	assert.Equal(t, stBefore+1, testutil.ToFloat64(StatementsGenerated.WithLabelValues("refund")))

	setBefore := testutil.ToFloat64(SettingsSaved.WithLabelValues("true"))
	rec.SettingsSaved(true)
	assert.Equal(t, setBefore+1, testutil.ToFloat64(SettingsSaved.WithLabelValues("true")))
}

func TestInstrumentRecordsStatus(t *testing.T) {
	h := Instrument("/test", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/test", "418"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("/test", "418")))
}

func TestHandlerServesMetrics(t *testing.T) {
	NewPrometheusRecorder().ReportParsed(models.DialectCSV, 1)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "autaxy_reports_parsed_total")
}
