// internal/service/template_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository"
)

type TemplateService interface {
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]*model.Template, error)
	GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*model.TemplateDetail, error)
	CreateTemplate(ctx context.Context, userID uuid.UUID, req *model.CreateTemplateRequest) (*model.Template, error)
	UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, req *model.UpdateTemplateRequest) (*model.Template, error)
	DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error
	AddExercise(ctx context.Context, userID, templateID uuid.UUID, req *model.AddTemplateExerciseRequest) (*model.TemplateExercise, error)
	RemoveExercise(ctx context.Context, userID, templateID, templateExerciseID uuid.UUID) error
	// ApplyTemplate starts a new active workout from the template.
	ApplyTemplate(ctx context.Context, userID, templateID uuid.UUID) (*model.WorkoutDetail, error)
}

type templateService struct {
	templateRepo   repository.TemplateRepository
	teRepo         repository.TemplateExerciseRepository
	exerciseRepo   repository.ExerciseRepository
	workoutService WorkoutService
}

func NewTemplateService(
	templateRepo repository.TemplateRepository,
	teRepo repository.TemplateExerciseRepository,
	exerciseRepo repository.ExerciseRepository,
	workoutService WorkoutService,
) TemplateService {
	return &templateService{
		templateRepo:   templateRepo,
		teRepo:         teRepo,
		exerciseRepo:   exerciseRepo,
		workoutService: workoutService,
	}
}

func (s *templateService) findOwned(ctx context.Context, userID, templateID uuid.UUID) (*model.Template, error) {
	template, err := s.templateRepo.FindByID(ctx, userID, templateID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TEMPLATE_NOT_FOUND", "The template does not exist.", "", model.ErrNotFound)
		}
		return nil, internalErr("Failed to load the template.", err)
	}
	return template, nil
}

func (s *templateService) ListTemplates(ctx context.Context, userID uuid.UUID) ([]*model.Template, error) {
	templates, err := s.templateRepo.FindByUser(ctx, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list templates", "error", err)
		return nil, internalErr("Failed to list templates.", err)
	}
	return templates, nil
}

func (s *templateService) GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*model.TemplateDetail, error) {
	template, err := s.findOwned(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	slots, err := s.teRepo.ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, internalErr("Failed to load the template.", err)
	}

	detail := &model.TemplateDetail{Template: *template, Exercises: make([]*model.TemplateExerciseDetail, 0, len(slots))}
	for _, slot := range slots {
		exercise, err := s.exerciseRepo.FindByID(ctx, slot.ExerciseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, internalErr("Failed to load the template.", err)
		}
		detail.Exercises = append(detail.Exercises, &model.TemplateExerciseDetail{
			TemplateExercise: *slot,
			Exercise:         exercise,
		})
	}
	return detail, nil
}

func (s *templateService) CreateTemplate(ctx context.Context, userID uuid.UUID, req *model.CreateTemplateRequest) (*model.Template, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	now := time.Now()
	template := &model.Template{
		TemplateID:  uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		logger.Error("Failed to create template", "error", err)
		return nil, internalErr("Failed to create the template.", err)
	}
	logger.Info("Template created", "template_id", template.TemplateID)
	return template, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, req *model.UpdateTemplateRequest) (*model.Template, error) {
	template, err := s.findOwned(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	template.UpdatedAt = time.Now()
	if err := s.templateRepo.Update(ctx, template); err != nil {
		middleware.GetLogger(ctx).Error("Failed to update template", "error", err, "template_id", templateID)
		return nil, internalErr("Failed to update the template.", err)
	}
	return template, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "template_id", templateID)

	if _, err := s.findOwned(ctx, userID, templateID); err != nil {
		return err
	}
	if err := s.teRepo.DeleteByTemplate(ctx, templateID); err != nil {
		return internalErr("Failed to delete the template.", err)
	}
	if err := s.templateRepo.Delete(ctx, userID, templateID); err != nil {
		return internalErr("Failed to delete the template.", err)
	}
	logger.Info("Template deleted")
	return nil
}

func (s *templateService) AddExercise(ctx context.Context, userID, templateID uuid.UUID, req *model.AddTemplateExerciseRequest) (*model.TemplateExercise, error) {
	if _, err := s.findOwned(ctx, userID, templateID); err != nil {
		return nil, err
	}
	exerciseID, err := uuid.Parse(req.ExerciseID)
	if err != nil {
		return nil, model.NewAppError("INVALID_INPUT", "Exercise ID must be a UUID.", "exercise_id", model.ErrInvalidInput)
	}
	exercise, err := s.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("EXERCISE_NOT_FOUND", "The exercise does not exist.", "exercise_id", model.ErrNotFound)
		}
		return nil, internalErr("Failed to add the exercise.", err)
	}
	if exercise.IsCustom && exercise.UserID != userID {
		return nil, model.NewAppError("EXERCISE_NOT_FOUND", "The exercise does not exist.", "exercise_id", model.ErrNotFound)
	}

	slots, err := s.teRepo.ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, internalErr("Failed to add the exercise.", err)
	}

	defaultSets := req.DefaultSets
	if defaultSets == 0 {
		defaultSets = 3
	}
	defaultReps := req.DefaultReps
	if defaultReps == 0 {
		defaultReps = 10
	}
	slot := &model.TemplateExercise{
		TemplateExerciseID: uuid.New(),
		TemplateID:         templateID,
		ExerciseID:         exerciseID,
		Order:              len(slots) + 1,
		DefaultSets:        defaultSets,
		DefaultReps:        defaultReps,
		DefaultWeight:      req.DefaultWeight,
	}
	if err := s.teRepo.Append(ctx, slot); err != nil {
		middleware.GetLogger(ctx).Error("Failed to add template exercise", "error", err, "template_id", templateID)
		return nil, internalErr("Failed to add the exercise.", err)
	}
	return slot, nil
}

func (s *templateService) RemoveExercise(ctx context.Context, userID, templateID, templateExerciseID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, templateID); err != nil {
		return err
	}
	slots, err := s.teRepo.ListByTemplate(ctx, templateID)
	if err != nil {
		return internalErr("Failed to remove the exercise.", err)
	}
	remaining := make([]*model.TemplateExercise, 0, len(slots))
	found := false
	for _, slot := range slots {
		if slot.TemplateExerciseID == templateExerciseID {
			found = true
			continue
		}
		remaining = append(remaining, slot)
	}
	if !found {
		return model.NewAppError("TEMPLATE_EXERCISE_NOT_FOUND", "The exercise is not part of this template.", "", model.ErrNotFound)
	}
	for i, slot := range remaining {
		slot.Order = i + 1
	}
	if err := s.teRepo.ReplaceForTemplate(ctx, templateID, remaining); err != nil {
		middleware.GetLogger(ctx).Error("Failed to rewrite template exercises", "error", err, "template_id", templateID)
		return internalErr("Failed to remove the exercise.", err)
	}
	return nil
}

func (s *templateService) ApplyTemplate(ctx context.Context, userID, templateID uuid.UUID) (*model.WorkoutDetail, error) {
	template, err := s.findOwned(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	return s.workoutService.CreateWorkout(ctx, userID, &model.CreateWorkoutRequest{
		Title:      template.Name,
		TemplateID: template.TemplateID.String(),
	})
}
