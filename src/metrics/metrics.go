package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
)

var (
	// ReportsParsed counts successfully parsed reports per dialect.
	ReportsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_reports_parsed_total",
			Help: "Total number of parsed reports",
		},
		[]string{"dialect"},
	)

	// ReportRows counts transaction rows taken from parsed reports.
	ReportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_report_rows_total",
			Help: "Total number of transaction rows in parsed reports",
		},
		[]string{"dialect"},
	)

	ReportParseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_report_parse_failures_total",
			Help: "Total number of rejected report texts",
		},
		[]string{"reason"},
	)

	StatementsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_statements_generated_total",
			Help: "Total number of generated statements",
		},
		[]string{"booking"},
	)

	SettingsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_settings_saved_total",
			Help: "Total number of business settings saves",
		},
		[]string{"has_vat_id"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autaxy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "autaxy_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Recorder receives telemetry events. Events carry counts and totals only.
type Recorder interface {
	ReportParsed(dialect models.Dialect, rows int)
	ReportParseFailed(reason string)
	StatementGenerated(dialect models.Dialect, booking models.BookingKind, totalEUR decimal.Decimal)
	SettingsSaved(hasVATID bool)
}

// PrometheusRecorder increments the package counters and logs each event.
type PrometheusRecorder struct{}

func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{}
}

func (PrometheusRecorder) ReportParsed(dialect models.Dialect, rows int) {
	ReportsParsed.WithLabelValues(string(dialect)).Inc()
	ReportRows.WithLabelValues(string(dialect)).Add(float64(rows))
	logger.L.Info("telemetry", "event", "report_parsed", "type", dialect, "rows", rows)
}

func (PrometheusRecorder) ReportParseFailed(reason string) {
	ReportParseFailures.WithLabelValues(reason).Inc()
	logger.L.Info("telemetry", "event", "report_parse_failed", "reason", reason)
}

func (PrometheusRecorder) StatementGenerated(dialect models.Dialect, booking models.BookingKind, totalEUR decimal.Decimal) {
	StatementsGenerated.WithLabelValues(string(booking)).Inc()
	logger.L.Info("telemetry", "event", "statement_generated", "type", dialect, "total_eur", totalEUR.Round(2).String())
}

func (PrometheusRecorder) SettingsSaved(hasVATID bool) {
	SettingsSaved.WithLabelValues(strconv.FormatBool(hasVATID)).Inc()
	logger.L.Info("telemetry", "event", "settings_saved", "has_vat_id", hasVATID)
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) ReportParsed(models.Dialect, int) {}
func (NopRecorder) ReportParseFailed(string) {}
func (NopRecorder) StatementGenerated(models.Dialect, models.BookingKind, decimal.Decimal) {}
func (NopRecorder) SettingsSaved(bool) {}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps next with request count and latency metrics under route.
func Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}
