// internal/service/exercise_service.go
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

type ExerciseService interface {
	ListExercises(ctx context.Context, userID uuid.UUID, filter model.ExerciseFilter) ([]*model.Exercise, error)
	GetExercise(ctx context.Context, userID, exerciseID uuid.UUID) (*model.Exercise, error)
	CreateExercise(ctx context.Context, userID uuid.UUID, req *model.CreateExerciseRequest) (*model.Exercise, error)
	UpdateExercise(ctx context.Context, userID, exerciseID uuid.UUID, req *model.UpdateExerciseRequest) (*model.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID uuid.UUID) error
	EnsureSeedExercises(ctx context.Context) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	weRepo       repository.WorkoutExerciseRepository
	teRepo       repository.TemplateExerciseRepository
}

func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	weRepo repository.WorkoutExerciseRepository,
	teRepo repository.TemplateExerciseRepository,
) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		weRepo:       weRepo,
		teRepo:       teRepo,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context, userID uuid.UUID, filter model.ExerciseFilter) ([]*model.Exercise, error) {
	exercises, err := s.exerciseRepo.FindForUser(ctx, userID, filter)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list exercises", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list exercises.", "", err)
	}
	return exercises, nil
}

// GetExercise returns a system exercise or one of the caller's custom
// exercises. Another user's custom exercise reads as not found.
func (s *exerciseService) GetExercise(ctx context.Context, userID, exerciseID uuid.UUID) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("EXERCISE_NOT_FOUND", "The exercise does not exist.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the exercise.", "", err)
	}
	if exercise.IsCustom && exercise.UserID != userID {
		return nil, model.NewAppError("EXERCISE_NOT_FOUND", "The exercise does not exist.", "", model.ErrNotFound)
	}
	return exercise, nil
}

func (s *exerciseService) CreateExercise(ctx context.Context, userID uuid.UUID, req *model.CreateExerciseRequest) (*model.Exercise, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	exists, err := s.exerciseRepo.NameExists(ctx, userID, req.Name, nil)
	if err != nil {
		logger.Error("Failed to check exercise name", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the exercise.", "", err)
	}
	if exists {
		return nil, model.NewAppError("DUPLICATE_EXERCISE", "An exercise with this name already exists.", "name", model.ErrConflict)
	}

	now := time.Now()
	exercise := &model.Exercise{
		ExerciseID:  uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		MuscleGroup: req.MuscleGroup,
		Equipment:   req.Equipment,
		Description: req.Description,
		IsCustom:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		logger.Error("Failed to create exercise", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the exercise.", "", err)
	}

	logger.Info("Exercise created", "exercise_id", exercise.ExerciseID)
	return exercise, nil
}

func (s *exerciseService) UpdateExercise(ctx context.Context, userID, exerciseID uuid.UUID, req *model.UpdateExerciseRequest) (*model.Exercise, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "exercise_id", exerciseID)

	exercise, err := s.GetExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if !exercise.IsCustom {
		return nil, model.NewAppError("SYSTEM_EXERCISE", "System exercises cannot be modified.", "", model.ErrForbidden)
	}

	if req.Name != nil && *req.Name != exercise.Name {
		exists, err := s.exerciseRepo.NameExists(ctx, userID, *req.Name, &exerciseID)
		if err != nil {
			logger.Error("Failed to check exercise name", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the exercise.", "", err)
		}
		if exists {
			return nil, model.NewAppError("DUPLICATE_EXERCISE", "An exercise with this name already exists.", "name", model.ErrConflict)
		}
		exercise.Name = *req.Name
	}
	if req.Category != nil {
		exercise.Category = *req.Category
	}
	if req.MuscleGroup != nil {
		exercise.MuscleGroup = *req.MuscleGroup
	}
	if req.Equipment != nil {
		exercise.Equipment = *req.Equipment
	}
	if req.Description != nil {
		exercise.Description = *req.Description
	}
	exercise.UpdatedAt = time.Now()

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		logger.Error("Failed to update exercise", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the exercise.", "", err)
	}
	return exercise, nil
}

// DeleteExercise refuses to remove an exercise that any workout or
// template still references, so history never points at a missing row.
func (s *exerciseService) DeleteExercise(ctx context.Context, userID, exerciseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "exercise_id", exerciseID)

	exercise, err := s.GetExercise(ctx, userID, exerciseID)
	if err != nil {
		return err
	}
	if !exercise.IsCustom {
		return model.NewAppError("SYSTEM_EXERCISE", "System exercises cannot be deleted.", "", model.ErrForbidden)
	}

	inWorkout, err := s.weRepo.ExistsByExercise(ctx, exerciseID)
	if err != nil {
		logger.Error("Failed to check workout references", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the exercise.", "", err)
	}
	if inWorkout {
		return model.NewAppError("EXERCISE_IN_USE", "The exercise is used by a workout and cannot be deleted.", "", model.ErrConflict)
	}
	inTemplate, err := s.teRepo.ExistsByExercise(ctx, exerciseID)
	if err != nil {
		logger.Error("Failed to check template references", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the exercise.", "", err)
	}
	if inTemplate {
		return model.NewAppError("EXERCISE_IN_USE", "The exercise is used by a template and cannot be deleted.", "", model.ErrConflict)
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		logger.Error("Failed to delete exercise", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the exercise.", "", err)
	}
	logger.Info("Exercise deleted")
	return nil
}

// EnsureSeedExercises loads the built-in catalog on an empty store. It
// keys off the presence of any system exercise, so custom rows alone do
// not suppress seeding.
func (s *exerciseService) EnsureSeedExercises(ctx context.Context) error {
	existing, err := s.exerciseRepo.FindForUser(ctx, uuid.Nil, model.ExerciseFilter{})
	if err != nil {
		return err
	}
	for _, e := range existing {
		if !e.IsCustom {
			return nil
		}
	}

	now := time.Now()
	for _, seed := range seedExercises {
		e := seed
		e.ExerciseID = uuid.New()
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := s.exerciseRepo.Create(ctx, &e); err != nil {
			return err
		}
	}
	return nil
}

var seedExercises = []model.Exercise{
	{Name: "Barbell Bench Press", Category: model.CategoryStrength, MuscleGroup: "chest", Equipment: "barbell"},
	{Name: "Incline Dumbbell Press", Category: model.CategoryStrength, MuscleGroup: "chest", Equipment: "dumbbell"},
	{Name: "Push-Up", Category: model.CategoryStrength, MuscleGroup: "chest", Equipment: "bodyweight"},
	{Name: "Barbell Back Squat", Category: model.CategoryStrength, MuscleGroup: "legs", Equipment: "barbell"},
	{Name: "Romanian Deadlift", Category: model.CategoryStrength, MuscleGroup: "legs", Equipment: "barbell"},
	{Name: "Leg Press", Category: model.CategoryStrength, MuscleGroup: "legs", Equipment: "machine"},
	{Name: "Deadlift", Category: model.CategoryStrength, MuscleGroup: "back", Equipment: "barbell"},
	{Name: "Pull-Up", Category: model.CategoryStrength, MuscleGroup: "back", Equipment: "bodyweight"},
	{Name: "Seated Cable Row", Category: model.CategoryStrength, MuscleGroup: "back", Equipment: "cable"},
	{Name: "Overhead Press", Category: model.CategoryStrength, MuscleGroup: "shoulders", Equipment: "barbell"},
	{Name: "Lateral Raise", Category: model.CategoryStrength, MuscleGroup: "shoulders", Equipment: "dumbbell"},
	{Name: "Barbell Curl", Category: model.CategoryStrength, MuscleGroup: "arms", Equipment: "barbell"},
	{Name: "Triceps Pushdown", Category: model.CategoryStrength, MuscleGroup: "arms", Equipment: "cable"},
	{Name: "Plank", Category: model.CategoryStrength, MuscleGroup: "core", Equipment: "bodyweight"},
	{Name: "Hanging Leg Raise", Category: model.CategoryStrength, MuscleGroup: "core", Equipment: "bodyweight"},
	{Name: "Treadmill Run", Category: model.CategoryCardio, MuscleGroup: "full body", Equipment: "machine"},
	{Name: "Rowing Machine", Category: model.CategoryCardio, MuscleGroup: "full body", Equipment: "machine"},
	{Name: "Stationary Bike", Category: model.CategoryCardio, MuscleGroup: "legs", Equipment: "machine"},
	{Name: "Jump Rope", Category: model.CategoryCardio, MuscleGroup: "full body", Equipment: "rope"},
	{Name: "Hamstring Stretch", Category: model.CategoryFlexibility, MuscleGroup: "legs", Equipment: "bodyweight"},
	{Name: "Shoulder Stretch", Category: model.CategoryFlexibility, MuscleGroup: "shoulders", Equipment: "bodyweight"},
}
