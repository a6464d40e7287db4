// internal/service/workout_service.go
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

type WorkoutService interface {
	ListWorkouts(ctx context.Context, userID uuid.UUID, filter model.WorkoutFilter) (*model.WorkoutList, error)
	GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.WorkoutDetail, error)
	CreateWorkout(ctx context.Context, userID uuid.UUID, req *model.CreateWorkoutRequest) (*model.WorkoutDetail, error)
	UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, req *model.UpdateWorkoutRequest) (*model.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error

	FinishWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error)
	CancelWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error)
	PauseWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error)
	ResumeWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error)

	AddExercise(ctx context.Context, userID, workoutID uuid.UUID, req *model.AddWorkoutExerciseRequest) (*model.WorkoutExercise, error)
	RemoveExercise(ctx context.Context, userID, workoutID, workoutExerciseID uuid.UUID) error

	AddSet(ctx context.Context, userID, workoutID, workoutExerciseID uuid.UUID, req *model.CreateSetRequest) (*model.Set, error)
	UpdateSet(ctx context.Context, userID, workoutID, setID uuid.UUID, req *model.UpdateSetRequest) (*model.Set, error)
	DeleteSet(ctx context.Context, userID, workoutID, setID uuid.UUID) error
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	weRepo       repository.WorkoutExerciseRepository
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
	templateRepo repository.TemplateRepository
	teRepo       repository.TemplateExerciseRepository
	recordRepo   repository.PersonalRecordRepository
}

func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	weRepo repository.WorkoutExerciseRepository,
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
	templateRepo repository.TemplateRepository,
	teRepo repository.TemplateExerciseRepository,
	recordRepo repository.PersonalRecordRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		weRepo:       weRepo,
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
		templateRepo: templateRepo,
		teRepo:       teRepo,
		recordRepo:   recordRepo,
	}
}

func internalErr(msg string, err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", msg, "", err)
}

func (s *workoutService) findOwned(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	workout, err := s.workoutRepo.FindByID(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORKOUT_NOT_FOUND", "The workout does not exist.", "", model.ErrNotFound)
		}
		return nil, internalErr("Failed to load the workout.", err)
	}
	return workout, nil
}

// mutable guards structural edits: a completed or cancelled workout is a
// closed record.
func (s *workoutService) findMutable(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	workout, err := s.findOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status == model.WorkoutCompleted || workout.Status == model.WorkoutCancelled {
		return nil, model.NewAppError("WORKOUT_CLOSED", "A finished workout cannot be modified.", "", model.ErrConflict)
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, filter model.WorkoutFilter) (*model.WorkoutList, error) {
	items, total, err := s.workoutRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list workouts", "error", err)
		return nil, internalErr("Failed to list workouts.", err)
	}
	return &model.WorkoutList{Items: items, Total: total}, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.WorkoutDetail, error) {
	workout, err := s.findOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	return s.loadDetail(ctx, workout)
}

func (s *workoutService) loadDetail(ctx context.Context, workout *model.Workout) (*model.WorkoutDetail, error) {
	links, err := s.weRepo.ListByWorkout(ctx, workout.WorkoutID)
	if err != nil {
		return nil, internalErr("Failed to load the workout.", err)
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, we := range links {
		ids = append(ids, we.WorkoutExerciseID)
	}
	sets, err := s.setRepo.ListByWorkoutExercises(ctx, ids)
	if err != nil {
		return nil, internalErr("Failed to load the workout.", err)
	}
	setsByLink := make(map[uuid.UUID][]*model.Set, len(links))
	for _, set := range sets {
		setsByLink[set.WorkoutExerciseID] = append(setsByLink[set.WorkoutExerciseID], set)
	}

	detail := &model.WorkoutDetail{Workout: *workout, Exercises: make([]*model.WorkoutExerciseDetail, 0, len(links))}
	for _, we := range links {
		exercise, err := s.exerciseRepo.FindByID(ctx, we.ExerciseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, internalErr("Failed to load the workout.", err)
		}
		linkSets := setsByLink[we.WorkoutExerciseID]
		if linkSets == nil {
			linkSets = []*model.Set{}
		}
		detail.Exercises = append(detail.Exercises, &model.WorkoutExerciseDetail{
			WorkoutExercise: *we,
			Exercise:        exercise,
			Sets:            linkSets,
		})
	}
	return detail, nil
}

func (s *workoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, req *model.CreateWorkoutRequest) (*model.WorkoutDetail, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	now := time.Now()

	date := now
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return nil, model.NewAppError("INVALID_INPUT", "Date must be formatted as YYYY-MM-DD.", "date", model.ErrInvalidInput)
		}
		date = parsed
	}

	workout := &model.Workout{
		WorkoutID: uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Date:      date,
		StartTime: now,
		Status:    model.WorkoutActive,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		logger.Error("Failed to create workout", "error", err)
		return nil, internalErr("Failed to create the workout.", err)
	}

	if req.TemplateID != "" {
		templateID, err := uuid.Parse(req.TemplateID)
		if err != nil {
			return nil, model.NewAppError("INVALID_INPUT", "Template ID must be a UUID.", "template_id", model.ErrInvalidInput)
		}
		if err := s.applyTemplate(ctx, userID, workout.WorkoutID, templateID); err != nil {
			return nil, err
		}
	}

	logger.Info("Workout created", "workout_id", workout.WorkoutID)
	return s.loadDetail(ctx, workout)
}

// applyTemplate copies every slot of the template into the workout, with
// pre-filled uncompleted sets from the slot defaults.
func (s *workoutService) applyTemplate(ctx context.Context, userID, workoutID, templateID uuid.UUID) error {
	template, err := s.templateRepo.FindByID(ctx, userID, templateID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("TEMPLATE_NOT_FOUND", "The template does not exist.", "template_id", model.ErrNotFound)
		}
		return internalErr("Failed to apply the template.", err)
	}
	slots, err := s.teRepo.ListByTemplate(ctx, template.TemplateID)
	if err != nil {
		return internalErr("Failed to apply the template.", err)
	}

	now := time.Now()
	for i, slot := range slots {
		we := &model.WorkoutExercise{
			WorkoutExerciseID: uuid.New(),
			WorkoutID:         workoutID,
			ExerciseID:        slot.ExerciseID,
			Order:             i + 1,
			CreatedAt:         now,
		}
		if err := s.weRepo.Append(ctx, we); err != nil {
			return internalErr("Failed to apply the template.", err)
		}
		for n := 1; n <= slot.DefaultSets; n++ {
			set := &model.Set{
				SetID:             uuid.New(),
				WorkoutExerciseID: we.WorkoutExerciseID,
				SetNumber:         n,
				Weight:            slot.DefaultWeight,
				Reps:              slot.DefaultReps,
				CreatedAt:         now,
			}
			if err := s.setRepo.Append(ctx, set); err != nil {
				return internalErr("Failed to apply the template.", err)
			}
		}
	}
	return nil
}

func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, req *model.UpdateWorkoutRequest) (*model.Workout, error) {
	workout, err := s.findOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		workout.Title = *req.Title
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}
	workout.UpdatedAt = time.Now()
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		middleware.GetLogger(ctx).Error("Failed to update workout", "error", err, "workout_id", workoutID)
		return nil, internalErr("Failed to update the workout.", err)
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "workout_id", workoutID)

	if _, err := s.findOwned(ctx, userID, workoutID); err != nil {
		return err
	}
	links, err := s.weRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		return internalErr("Failed to delete the workout.", err)
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, we := range links {
		ids = append(ids, we.WorkoutExerciseID)
	}
	if err := s.setRepo.DeleteByWorkoutExercises(ctx, ids); err != nil {
		return internalErr("Failed to delete the workout.", err)
	}
	if err := s.weRepo.DeleteByWorkout(ctx, workoutID); err != nil {
		return internalErr("Failed to delete the workout.", err)
	}
	if err := s.workoutRepo.Delete(ctx, userID, workoutID); err != nil {
		return internalErr("Failed to delete the workout.", err)
	}
	logger.Info("Workout deleted")
	return nil
}

func (s *workoutService) FinishWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "workout_id", workoutID)

	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	workout.Status = model.WorkoutCompleted
	workout.EndTime = &now
	workout.Duration = int(now.Sub(workout.StartTime).Seconds())
	workout.UpdatedAt = now

	if err := s.recalcTotals(ctx, workout); err != nil {
		return nil, err
	}
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		logger.Error("Failed to finish workout", "error", err)
		return nil, internalErr("Failed to finish the workout.", err)
	}

	// Record updates are best effort; the workout is already closed.
	if err := s.updatePersonalRecords(ctx, workout); err != nil {
		logger.Warn("Failed to update personal records", "error", err)
	}

	logger.Info("Workout finished", "duration", workout.Duration, "total_volume", workout.TotalVolume)
	return workout, nil
}

func (s *workoutService) CancelWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	return s.transition(ctx, userID, workoutID, model.WorkoutCancelled)
}

func (s *workoutService) PauseWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status != model.WorkoutActive {
		return nil, model.NewAppError("INVALID_STATUS", "Only an active workout can be paused.", "", model.ErrConflict)
	}
	return s.saveStatus(ctx, workout, model.WorkoutPaused)
}

func (s *workoutService) ResumeWorkout(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status != model.WorkoutPaused {
		return nil, model.NewAppError("INVALID_STATUS", "Only a paused workout can be resumed.", "", model.ErrConflict)
	}
	return s.saveStatus(ctx, workout, model.WorkoutActive)
}

func (s *workoutService) transition(ctx context.Context, userID, workoutID uuid.UUID, status model.WorkoutStatus) (*model.Workout, error) {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	return s.saveStatus(ctx, workout, status)
}

func (s *workoutService) saveStatus(ctx context.Context, workout *model.Workout, status model.WorkoutStatus) (*model.Workout, error) {
	workout.Status = status
	workout.UpdatedAt = time.Now()
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		middleware.GetLogger(ctx).Error("Failed to update workout status", "error", err, "workout_id", workout.WorkoutID)
		return nil, internalErr("Failed to update the workout.", err)
	}
	return workout, nil
}

func (s *workoutService) AddExercise(ctx context.Context, userID, workoutID uuid.UUID, req *model.AddWorkoutExerciseRequest) (*model.WorkoutExercise, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "workout_id", workoutID)

	if _, err := s.findMutable(ctx, userID, workoutID); err != nil {
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

	links, err := s.weRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		return nil, internalErr("Failed to add the exercise.", err)
	}
	we := &model.WorkoutExercise{
		WorkoutExerciseID: uuid.New(),
		WorkoutID:         workoutID,
		ExerciseID:        exerciseID,
		Order:             len(links) + 1,
		Notes:             req.Notes,
		CreatedAt:         time.Now(),
	}
	if err := s.weRepo.Append(ctx, we); err != nil {
		logger.Error("Failed to add exercise to workout", "error", err)
		return nil, internalErr("Failed to add the exercise.", err)
	}
	return we, nil
}

// RemoveExercise drops the link and its sets, renumbers the survivors to
// a dense 1..N, and recomputes the workout totals.
func (s *workoutService) RemoveExercise(ctx context.Context, userID, workoutID, workoutExerciseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "workout_id", workoutID)

	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	links, err := s.weRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		return internalErr("Failed to remove the exercise.", err)
	}
	remaining := make([]*model.WorkoutExercise, 0, len(links))
	found := false
	for _, we := range links {
		if we.WorkoutExerciseID == workoutExerciseID {
			found = true
			continue
		}
		remaining = append(remaining, we)
	}
	if !found {
		return model.NewAppError("WORKOUT_EXERCISE_NOT_FOUND", "The exercise is not part of this workout.", "", model.ErrNotFound)
	}
	for i, we := range remaining {
		we.Order = i + 1
	}

	if err := s.setRepo.DeleteByWorkoutExercises(ctx, []uuid.UUID{workoutExerciseID}); err != nil {
		return internalErr("Failed to remove the exercise.", err)
	}
	if err := s.weRepo.ReplaceForWorkout(ctx, workoutID, remaining); err != nil {
		logger.Error("Failed to rewrite workout exercises", "error", err)
		return internalErr("Failed to remove the exercise.", err)
	}
	return s.saveTotals(ctx, workout)
}

func (s *workoutService) findOwnedLink(ctx context.Context, workoutID, workoutExerciseID uuid.UUID) (*model.WorkoutExercise, error) {
	we, err := s.weRepo.FindByID(ctx, workoutExerciseID)
	if err != nil || we.WorkoutID != workoutID {
		return nil, model.NewAppError("WORKOUT_EXERCISE_NOT_FOUND", "The exercise is not part of this workout.", "", model.ErrNotFound)
	}
	return we, nil
}

func (s *workoutService) AddSet(ctx context.Context, userID, workoutID, workoutExerciseID uuid.UUID, req *model.CreateSetRequest) (*model.Set, error) {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findOwnedLink(ctx, workoutID, workoutExerciseID); err != nil {
		return nil, err
	}

	existing, err := s.setRepo.ListByWorkoutExercises(ctx, []uuid.UUID{workoutExerciseID})
	if err != nil {
		return nil, internalErr("Failed to add the set.", err)
	}

	now := time.Now()
	set := &model.Set{
		SetID:             uuid.New(),
		WorkoutExerciseID: workoutExerciseID,
		SetNumber:         len(existing) + 1,
		Weight:            req.Weight,
		Reps:              req.Reps,
		Completed:         req.Completed,
		RestTime:          req.RestTime,
		Notes:             req.Notes,
		CreatedAt:         now,
	}
	if req.Completed {
		set.CompletedAt = &now
	}
	if err := s.setRepo.Append(ctx, set); err != nil {
		middleware.GetLogger(ctx).Error("Failed to add set", "error", err, "workout_id", workoutID)
		return nil, internalErr("Failed to add the set.", err)
	}
	if err := s.saveTotals(ctx, workout); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *workoutService) UpdateSet(ctx context.Context, userID, workoutID, setID uuid.UUID, req *model.UpdateSetRequest) (*model.Set, error) {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	set, err := s.setRepo.FindByID(ctx, setID)
	if err != nil {
		return nil, model.NewAppError("SET_NOT_FOUND", "The set does not exist.", "", model.ErrNotFound)
	}
	if _, err := s.findOwnedLink(ctx, workoutID, set.WorkoutExerciseID); err != nil {
		return nil, err
	}

	if req.Weight != nil {
		set.Weight = *req.Weight
	}
	if req.Reps != nil {
		set.Reps = *req.Reps
	}
	if req.RestTime != nil {
		set.RestTime = *req.RestTime
	}
	if req.Notes != nil {
		set.Notes = *req.Notes
	}
	if req.Completed != nil && *req.Completed != set.Completed {
		set.Completed = *req.Completed
		if set.Completed {
			now := time.Now()
			set.CompletedAt = &now
		} else {
			set.CompletedAt = nil
		}
	}

	if err := s.setRepo.Update(ctx, set); err != nil {
		middleware.GetLogger(ctx).Error("Failed to update set", "error", err, "set_id", setID)
		return nil, internalErr("Failed to update the set.", err)
	}
	if err := s.saveTotals(ctx, workout); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *workoutService) DeleteSet(ctx context.Context, userID, workoutID, setID uuid.UUID) error {
	workout, err := s.findMutable(ctx, userID, workoutID)
	if err != nil {
		return err
	}
	set, err := s.setRepo.FindByID(ctx, setID)
	if err != nil {
		return model.NewAppError("SET_NOT_FOUND", "The set does not exist.", "", model.ErrNotFound)
	}
	if _, err := s.findOwnedLink(ctx, workoutID, set.WorkoutExerciseID); err != nil {
		return err
	}

	siblings, err := s.setRepo.ListByWorkoutExercises(ctx, []uuid.UUID{set.WorkoutExerciseID})
	if err != nil {
		return internalErr("Failed to delete the set.", err)
	}
	remaining := make([]*model.Set, 0, len(siblings))
	for _, sib := range siblings {
		if sib.SetID != setID {
			remaining = append(remaining, sib)
		}
	}
	for i, sib := range remaining {
		sib.SetNumber = i + 1
	}
	if err := s.setRepo.ReplaceForExercise(ctx, set.WorkoutExerciseID, remaining); err != nil {
		middleware.GetLogger(ctx).Error("Failed to rewrite sets", "error", err, "set_id", setID)
		return internalErr("Failed to delete the set.", err)
	}
	return s.saveTotals(ctx, workout)
}

// recalcTotals rebuilds TotalVolume/TotalSets/TotalReps from the completed
// sets of the whole workout.
func (s *workoutService) recalcTotals(ctx context.Context, workout *model.Workout) error {
	links, err := s.weRepo.ListByWorkout(ctx, workout.WorkoutID)
	if err != nil {
		return internalErr("Failed to recompute the workout totals.", err)
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, we := range links {
		ids = append(ids, we.WorkoutExerciseID)
	}
	sets, err := s.setRepo.ListByWorkoutExercises(ctx, ids)
	if err != nil {
		return internalErr("Failed to recompute the workout totals.", err)
	}

	workout.TotalVolume = 0
	workout.TotalSets = 0
	workout.TotalReps = 0
	for _, set := range sets {
		if !set.Completed {
			continue
		}
		workout.TotalVolume += set.Volume()
		workout.TotalSets++
		workout.TotalReps += set.Reps
	}
	return nil
}

func (s *workoutService) saveTotals(ctx context.Context, workout *model.Workout) error {
	if err := s.recalcTotals(ctx, workout); err != nil {
		return err
	}
	workout.UpdatedAt = time.Now()
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return internalErr("Failed to save the workout totals.", err)
	}
	return nil
}

// updatePersonalRecords upgrades the per-exercise bests from the finished
// workout's completed sets. PreviousRecord keeps the old max weight so the
// client can show the delta.
func (s *workoutService) updatePersonalRecords(ctx context.Context, workout *model.Workout) error {
	links, err := s.weRepo.ListByWorkout(ctx, workout.WorkoutID)
	if err != nil {
		return err
	}
	for _, we := range links {
		sets, err := s.setRepo.ListByWorkoutExercises(ctx, []uuid.UUID{we.WorkoutExerciseID})
		if err != nil {
			return err
		}
		var maxWeight, maxVolume float64
		var maxReps int
		hasCompleted := false
		for _, set := range sets {
			if !set.Completed {
				continue
			}
			hasCompleted = true
			if set.Weight > maxWeight {
				maxWeight = set.Weight
			}
			if set.Reps > maxReps {
				maxReps = set.Reps
			}
			if v := set.Volume(); v > maxVolume {
				maxVolume = v
			}
		}
		if !hasCompleted {
			continue
		}

		record, err := s.recordRepo.FindByExercise(ctx, workout.UserID, we.ExerciseID)
		if errors.Is(err, model.ErrNotFound) {
			record = &model.PersonalRecord{
				RecordID:   uuid.New(),
				UserID:     workout.UserID,
				ExerciseID: we.ExerciseID,
				MaxWeight:  maxWeight,
				MaxReps:    maxReps,
				MaxVolume:  maxVolume,
				AchievedAt: time.Now(),
				WorkoutID:  workout.WorkoutID,
			}
			if err := s.recordRepo.Append(ctx, record); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		improved := false
		if maxWeight > record.MaxWeight {
			prev := record.MaxWeight
			record.PreviousRecord = &prev
			record.MaxWeight = maxWeight
			improved = true
		}
		if maxReps > record.MaxReps {
			record.MaxReps = maxReps
			improved = true
		}
		if maxVolume > record.MaxVolume {
			record.MaxVolume = maxVolume
			improved = true
		}
		if improved {
			record.AchievedAt = time.Now()
			record.WorkoutID = workout.WorkoutID
			if err := s.recordRepo.Update(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}
