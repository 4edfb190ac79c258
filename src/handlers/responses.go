package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/parsers/apple"
	"github.com/username/autaxy/src/security/validation"
	"github.com/username/autaxy/src/services"
	"github.com/username/autaxy/src/utils"
)

// sendServiceError maps service and parser errors to client responses.
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	switch {
	case errors.Is(err, services.ErrEmptyReport):
		utils.SendJSONError(w, "Report is empty", http.StatusBadRequest)
	case errors.Is(err, apple.ErrInvalidFormat):
		utils.SendJSONError(w, "Invalid report format", http.StatusBadRequest)
	case errors.Is(err, apple.ErrNoTransactionData):
		utils.SendJSONError(w, "No transaction data found", http.StatusBadRequest)
	case errors.Is(err, validation.ErrValidationFailed):
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrParsingFailed):
		log.Warn("Report parsing failed", "error", err)
		utils.SendJSONError(w, "Error parsing report", http.StatusBadRequest)
	default:
		log.Error("Internal error handling request", "path", r.URL.Path, "error", err)
		utils.SendJSONError(w, "An internal error occurred. Please try again later.", http.StatusInternalServerError)
	}
}

// sendJSONWithETag answers 304 when If-None-Match carries the current ETag.
func sendJSONWithETag(w http.ResponseWriter, r *http.Request, data interface{}) {
	log := logger.FromContext(r.Context())
	currentETag, etagErr := utils.GenerateETag(data)
	if etagErr != nil {
		log.Error("Failed to generate ETag", "path", r.URL.Path, "error", etagErr)
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		clientETag := r.Header.Get("If-None-Match")
		for _, cETag := range strings.Split(clientETag, ",") {
			if strings.TrimSpace(cETag) == quotedETag {
				log.Debug("ETag match", "path", r.URL.Path, "etag", currentETag)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	utils.SendJSON(w, data, http.StatusOK)
}
