// internal/handlers/workout_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type WorkoutHandler struct {
	service service.WorkoutService
	logger  *slog.Logger
}

func NewWorkoutHandler(s service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutHandler{service: s, logger: logger}
}

func parseWorkoutFilter(r *http.Request) (model.WorkoutFilter, error) {
	q := r.URL.Query()
	filter := model.WorkoutFilter{Status: model.WorkoutStatus(q.Get("status"))}

	if raw := q.Get("start_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return filter, model.NewAppError("INVALID_INPUT", "start_date must be formatted as YYYY-MM-DD.", "start_date", model.ErrInvalidInput)
		}
		filter.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return filter, model.NewAppError("INVALID_INPUT", "end_date must be formatted as YYYY-MM-DD.", "end_date", model.ErrInvalidInput)
		}
		filter.EndDate = &t
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, model.NewAppError("INVALID_INPUT", "limit must be a non-negative integer.", "limit", model.ErrInvalidInput)
		}
		filter.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, model.NewAppError("INVALID_INPUT", "offset must be a non-negative integer.", "offset", model.ErrInvalidInput)
		}
		filter.Offset = n
	}
	return filter, nil
}

func (h *WorkoutHandler) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWorkouts"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	filter, err := parseWorkoutFilter(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	list, err := h.service.ListWorkouts(r.Context(), userID, filter)
	if err != nil {
		logger.Error("Error listing workouts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if list.Items == nil {
		list.Items = []*model.Workout{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWorkout"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetWorkout(r.Context(), userID, workoutID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

func (h *WorkoutHandler) PostWorkout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWorkout"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	var req model.CreateWorkoutRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	detail, err := h.service.CreateWorkout(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating workout in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Workout created successfully", slog.String("workout_id", detail.WorkoutID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, detail, logger)
}

func (h *WorkoutHandler) PatchWorkout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWorkout"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateWorkoutRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	workout, err := h.service.UpdateWorkout(r.Context(), userID, workoutID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, workout, logger)
}

func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWorkout"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteWorkout(r.Context(), userID, workoutID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lifecycle transitions

func (h *WorkoutHandler) FinishWorkout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "FinishWorkout", h.service.FinishWorkout)
}

func (h *WorkoutHandler) CancelWorkout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "CancelWorkout", h.service.CancelWorkout)
}

func (h *WorkoutHandler) PauseWorkout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "PauseWorkout", h.service.PauseWorkout)
}

func (h *WorkoutHandler) ResumeWorkout(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "ResumeWorkout", h.service.ResumeWorkout)
}

func (h *WorkoutHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error),
) {
	logger := h.logger.With(slog.String("handler", name))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	workout, err := fn(r.Context(), userID, workoutID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Workout transitioned", slog.String("workout_id", workoutID.String()), slog.String("status", string(workout.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, workout, logger)
}

func (h *WorkoutHandler) PostWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWorkoutExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.AddWorkoutExerciseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	we, err := h.service.AddExercise(r.Context(), userID, workoutID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, we, logger)
}

func (h *WorkoutHandler) DeleteWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWorkoutExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	workoutExerciseID, err := uuidParam(r, "workout_exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.RemoveExercise(r.Context(), userID, workoutID, workoutExerciseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkoutHandler) PostSet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSet"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	workoutExerciseID, err := uuidParam(r, "workout_exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateSetRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	set, err := h.service.AddSet(r.Context(), userID, workoutID, workoutExerciseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, set, logger)
}

func (h *WorkoutHandler) PatchSet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchSet"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	setID, err := uuidParam(r, "set_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateSetRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	set, err := h.service.UpdateSet(r.Context(), userID, workoutID, setID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, set, logger)
}

func (h *WorkoutHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSet"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	workoutID, err := uuidParam(r, "workout_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	setID, err := uuidParam(r, "set_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteSet(r.Context(), userID, workoutID, setID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
