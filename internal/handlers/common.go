// internal/handlers/common.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

// requireUserID pulls the authenticated user out of the request context.
// A missing ID means the auth middleware did not run; treat as forbidden.
func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication credentials were not found.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_INPUT", fmt.Sprintf("%s must be a UUID.", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if appErr := webutil.ValidateStruct(dst); appErr != nil {
		logger.Warn("Validation failed", slog.String("field", appErr.Field), slog.String("message", appErr.Message))
		webutil.HandleError(w, logger, appErr)
		return false
	}
	return true
}
