// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{service: s, logger: logger}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	settings, err := h.service.GetSettings(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

func (h *SettingsHandler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchSettings"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	var req model.UpdateSettingsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Settings updated successfully", slog.String("user_id", userID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}
