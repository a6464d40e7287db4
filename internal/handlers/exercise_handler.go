// internal/handlers/exercise_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type ExerciseHandler struct {
	service service.ExerciseService
	logger  *slog.Logger
}

func NewExerciseHandler(s service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseHandler{service: s, logger: logger}
}

// GetExercises lists system and custom exercises, optionally filtered by
// category, muscle_group and keyword query parameters.
func (h *ExerciseHandler) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExercises"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	filter := model.ExerciseFilter{
		Category:    r.URL.Query().Get("category"),
		MuscleGroup: r.URL.Query().Get("muscle_group"),
		Keyword:     r.URL.Query().Get("keyword"),
	}
	exercises, err := h.service.ListExercises(r.Context(), userID, filter)
	if err != nil {
		logger.Error("Error listing exercises in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if exercises == nil {
		exercises = []*model.Exercise{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, exercises, logger)
}

func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	exerciseID, err := uuidParam(r, "exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	exercise, err := h.service.GetExercise(r.Context(), userID, exerciseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, exercise, logger)
}

func (h *ExerciseHandler) PostExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	var req model.CreateExerciseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	exercise, err := h.service.CreateExercise(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating exercise in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exercise created successfully", slog.String("exercise_id", exercise.ExerciseID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, exercise, logger)
}

func (h *ExerciseHandler) PatchExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	exerciseID, err := uuidParam(r, "exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateExerciseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	exercise, err := h.service.UpdateExercise(r.Context(), userID, exerciseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, exercise, logger)
}

func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	exerciseID, err := uuidParam(r, "exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteExercise(r.Context(), userID, exerciseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
