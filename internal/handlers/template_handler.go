// internal/handlers/template_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type TemplateHandler struct {
	service service.TemplateService
	logger  *slog.Logger
}

func NewTemplateHandler(s service.TemplateService, logger *slog.Logger) *TemplateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateHandler{service: s, logger: logger}
}

func (h *TemplateHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplates"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	templates, err := h.service.ListTemplates(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing templates in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if templates == nil {
		templates = []*model.Template{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, templates, logger)
}

func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplate"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetTemplate(r.Context(), userID, templateID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

func (h *TemplateHandler) PostTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTemplate"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	var req model.CreateTemplateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	template, err := h.service.CreateTemplate(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template created successfully", slog.String("template_id", template.TemplateID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, template, logger)
}

func (h *TemplateHandler) PatchTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTemplate"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateTemplateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	template, err := h.service.UpdateTemplate(r.Context(), userID, templateID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTemplate"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteTemplate(r.Context(), userID, templateID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandler) PostTemplateExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTemplateExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.AddTemplateExerciseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	slot, err := h.service.AddExercise(r.Context(), userID, templateID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, slot, logger)
}

func (h *TemplateHandler) DeleteTemplateExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTemplateExercise"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	templateExerciseID, err := uuidParam(r, "template_exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.RemoveExercise(r.Context(), userID, templateID, templateExerciseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostApplyTemplate starts a new workout from the template.
func (h *TemplateHandler) PostApplyTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostApplyTemplate"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	templateID, err := uuidParam(r, "template_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.ApplyTemplate(r.Context(), userID, templateID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template applied", slog.String("template_id", templateID.String()), slog.String("workout_id", detail.WorkoutID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, detail, logger)
}
