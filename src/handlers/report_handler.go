package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/security/validation"
	"github.com/username/autaxy/src/services"
	"github.com/username/autaxy/src/utils"
)

var ledgerHeader = []string{
	"transaction_date", "settlement_date", "sku", "title", "country",
	"quantity", "partner_share", "customer_price", "currency", "original_currency",
}

type ReportHandler struct {
	reportService  services.ReportService
	maxUploadBytes int64
}

func NewReportHandler(service services.ReportService, maxUploadBytes int64) *ReportHandler {
	return &ReportHandler{
		reportService:  service,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *ReportHandler) HandleParse(w http.ResponseWriter, r *http.Request) {
	text, ok := readReportText(w, r, h.maxUploadBytes)
	if !ok {
		return
	}
	report, err := h.reportService.ParseReport(r.Context(), text)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSONWithETag(w, r, report)
}

func (h *ReportHandler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	text, ok := readReportText(w, r, h.maxUploadBytes)
	if !ok {
		return
	}
	statement, err := h.reportService.BuildStatement(r.Context(), text)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, statement, http.StatusOK)
}

func (h *ReportHandler) HandleLedgerCSV(w http.ResponseWriter, r *http.Request) {
	text, ok := readReportText(w, r, h.maxUploadBytes)
	if !ok {
		return
	}
	report, err := h.reportService.ParseReport(r.Context(), text)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ReportID+".csv"))
	w.WriteHeader(http.StatusOK)

	if err := writeLedgerCSV(w, report); err != nil {
		logger.FromContext(r.Context()).Error("Error writing ledger CSV", "reportID", report.ReportID, "error", err)
	}
}

// writeLedgerCSV stops at the first failed write.
func writeLedgerCSV(w io.Writer, report *models.ReportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for i, tx := range report.Transactions {
		if err := cw.Write(ledgerRow(tx)); err != nil {
			return fmt.Errorf("ledger row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func ledgerRow(tx models.Transaction) []string {
	text := validation.SanitizeForFormulaInjection
	amount := validation.SanitizeAmountCell
	return []string{
		text(tx.TransactionDate),
		text(tx.SettlementDate),
		text(tx.SKU),
		text(tx.Title),
		text(tx.Country),
		amount(strconv.FormatInt(tx.Quantity, 10)),
		amount(tx.PartnerShare.StringFixed(2)),
		amount(tx.CustomerPrice.String()),
		text(tx.Currency),
		text(tx.OriginalCurrency),
	}
}

func (h *ReportHandler) HandleListImports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.SendJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	imports, err := h.reportService.ListImports(r.Context(), limit)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	if imports == nil {
		imports = []models.ReportImport{}
	}
	sendJSONWithETag(w, r, imports)
}
