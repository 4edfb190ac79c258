package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/services"
	"github.com/username/autaxy/src/utils"
)

const maxSettingsBodyBytes = 64 << 10

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: service}
}

func (h *SettingsHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSONWithETag(w, r, settings)
}

func (h *SettingsHandler) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req models.BusinessSettings
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingsBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		logger.FromContext(r.Context()).Warn("Invalid settings payload", "error", err)
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.settingsService.Save(r.Context(), req)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.SendJSON(w, saved, http.StatusOK)
}
