// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type UserHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewUserHandler(s service.AuthService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{service: s, logger: logger}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		logger.Error("Error loading profile in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// PatchMe updates the authenticated user's profile.
func (h *UserHandler) PatchMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchMe"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error updating profile in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Profile updated successfully", slog.String("user_id", userID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}
