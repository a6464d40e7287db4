// internal/service/workout_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository/mocks"
)

type workoutMocks struct {
	workoutRepo  *mocks.WorkoutRepository
	weRepo       *mocks.WorkoutExerciseRepository
	setRepo      *mocks.SetRepository
	exerciseRepo *mocks.ExerciseRepository
	templateRepo *mocks.TemplateRepository
	teRepo       *mocks.TemplateExerciseRepository
	recordRepo   *mocks.PersonalRecordRepository
}

func newWorkoutServiceForTest() (WorkoutService, *workoutMocks) {
	m := &workoutMocks{
		workoutRepo:  new(mocks.WorkoutRepository),
		weRepo:       new(mocks.WorkoutExerciseRepository),
		setRepo:      new(mocks.SetRepository),
		exerciseRepo: new(mocks.ExerciseRepository),
		templateRepo: new(mocks.TemplateRepository),
		teRepo:       new(mocks.TemplateExerciseRepository),
		recordRepo:   new(mocks.PersonalRecordRepository),
	}
	svc := NewWorkoutService(
		m.workoutRepo, m.weRepo, m.setRepo, m.exerciseRepo,
		m.templateRepo, m.teRepo, m.recordRepo,
	)
	return svc, m
}

func activeWorkout(userID uuid.UUID) *model.Workout {
	now := time.Now()
	return &model.Workout{
		WorkoutID: uuid.New(),
		UserID:    userID,
		Title:     "Push day",
		Date:      now,
		StartTime: now.Add(-45 * time.Minute),
		Status:    model.WorkoutActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func completedSet(weID uuid.UUID, number int, weight float64, reps int) *model.Set {
	now := time.Now()
	return &model.Set{
		SetID:             uuid.New(),
		WorkoutExerciseID: weID,
		SetNumber:         number,
		Weight:            weight,
		Reps:              reps,
		Completed:         true,
		CompletedAt:       &now,
		CreatedAt:         now,
	}
}

func Test_workoutService_FinishWorkout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	exerciseID := uuid.New()
	link := &model.WorkoutExercise{
		WorkoutExerciseID: uuid.New(),
		WorkoutID:         workout.WorkoutID,
		ExerciseID:        exerciseID,
		Order:             1,
	}
	sets := []*model.Set{
		completedSet(link.WorkoutExerciseID, 1, 100, 5),
		completedSet(link.WorkoutExerciseID, 2, 110, 3),
		{ // skipped: never completed
			SetID:             uuid.New(),
			WorkoutExerciseID: link.WorkoutExerciseID,
			SetNumber:         3,
			Weight:            120,
			Reps:              1,
		},
	}

	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).Return([]*model.WorkoutExercise{link}, nil)
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{link.WorkoutExerciseID}).Return(sets, nil)
	m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()
	m.recordRepo.On("FindByExercise", ctx, userID, exerciseID).Return(nil, model.ErrNotFound).Once()

	var appended *model.PersonalRecord
	m.recordRepo.On("Append", ctx, mock.AnythingOfType("*model.PersonalRecord")).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(*model.PersonalRecord)
		}).Return(nil).Once()

	finished, err := svc.FinishWorkout(ctx, userID, workout.WorkoutID)
	require.NoError(t, err)

	assert.Equal(t, model.WorkoutCompleted, finished.Status)
	require.NotNil(t, finished.EndTime)
	assert.GreaterOrEqual(t, finished.Duration, 45*60)

	// Totals come from the completed sets only: 100*5 + 110*3.
	assert.Equal(t, 830.0, finished.TotalVolume)
	assert.Equal(t, 2, finished.TotalSets)
	assert.Equal(t, 8, finished.TotalReps)

	require.NotNil(t, appended)
	assert.Equal(t, 110.0, appended.MaxWeight)
	assert.Equal(t, 5, appended.MaxReps)
	assert.Equal(t, 500.0, appended.MaxVolume)
	assert.Equal(t, workout.WorkoutID, appended.WorkoutID)
	m.recordRepo.AssertExpectations(t)
}

func Test_workoutService_FinishWorkout_RecordImprovement(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	exerciseID := uuid.New()
	link := &model.WorkoutExercise{
		WorkoutExerciseID: uuid.New(),
		WorkoutID:         workout.WorkoutID,
		ExerciseID:        exerciseID,
		Order:             1,
	}
	sets := []*model.Set{completedSet(link.WorkoutExerciseID, 1, 105, 4)}
	existing := &model.PersonalRecord{
		RecordID:   uuid.New(),
		UserID:     userID,
		ExerciseID: exerciseID,
		MaxWeight:  100,
		MaxReps:    6,
		MaxVolume:  600,
	}

	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).Return([]*model.WorkoutExercise{link}, nil)
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{link.WorkoutExerciseID}).Return(sets, nil)
	m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()
	m.recordRepo.On("FindByExercise", ctx, userID, exerciseID).Return(existing, nil).Once()
	m.recordRepo.On("Update", ctx, existing).Return(nil).Once()

	_, err := svc.FinishWorkout(ctx, userID, workout.WorkoutID)
	require.NoError(t, err)

	// Weight improved from 100 to 105; reps and volume bests stand.
	assert.Equal(t, 105.0, existing.MaxWeight)
	require.NotNil(t, existing.PreviousRecord)
	assert.Equal(t, 100.0, *existing.PreviousRecord)
	assert.Equal(t, 6, existing.MaxReps)
	assert.Equal(t, 600.0, existing.MaxVolume)
	assert.Equal(t, workout.WorkoutID, existing.WorkoutID)
	m.recordRepo.AssertExpectations(t)
}

func Test_workoutService_FinishWorkout_AlreadyClosed(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	workout.Status = model.WorkoutCompleted
	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()

	_, err := svc.FinishWorkout(ctx, userID, workout.WorkoutID)
	require.Error(t, err)
	appErr, ok := err.(*model.AppError)
	require.True(t, ok)
	assert.Equal(t, "WORKOUT_CLOSED", appErr.Code)
	assert.True(t, errors.Is(appErr, model.ErrConflict))
}

func Test_workoutService_PauseResume(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("pause active workout", func(t *testing.T) {
		svc, m := newWorkoutServiceForTest()
		workout := activeWorkout(userID)
		m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
		m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()

		paused, err := svc.PauseWorkout(ctx, userID, workout.WorkoutID)
		require.NoError(t, err)
		assert.Equal(t, model.WorkoutPaused, paused.Status)
	})

	t.Run("resume requires paused", func(t *testing.T) {
		svc, m := newWorkoutServiceForTest()
		workout := activeWorkout(userID)
		m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()

		_, err := svc.ResumeWorkout(ctx, userID, workout.WorkoutID)
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_STATUS", appErr.Code)
	})

	t.Run("pause requires active", func(t *testing.T) {
		svc, m := newWorkoutServiceForTest()
		workout := activeWorkout(userID)
		workout.Status = model.WorkoutPaused
		m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()

		_, err := svc.PauseWorkout(ctx, userID, workout.WorkoutID)
		require.Error(t, err)
	})
}

func Test_workoutService_RemoveExercise_Renumbers(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	first := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, Order: 1}
	second := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, Order: 2}
	third := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, Order: 3}

	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).
		Return([]*model.WorkoutExercise{first, second, third}, nil).Once()
	m.setRepo.On("DeleteByWorkoutExercises", ctx, []uuid.UUID{second.WorkoutExerciseID}).Return(nil).Once()

	var rewritten []*model.WorkoutExercise
	m.weRepo.On("ReplaceForWorkout", ctx, workout.WorkoutID, mock.Anything).
		Run(func(args mock.Arguments) {
			rewritten = args.Get(2).([]*model.WorkoutExercise)
		}).Return(nil).Once()

	// saveTotals re-reads the rewritten links.
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).
		Return([]*model.WorkoutExercise{first, third}, nil).Once()
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{first.WorkoutExerciseID, third.WorkoutExerciseID}).
		Return([]*model.Set{}, nil).Once()
	m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()

	err := svc.RemoveExercise(ctx, userID, workout.WorkoutID, second.WorkoutExerciseID)
	require.NoError(t, err)

	require.Len(t, rewritten, 2)
	assert.Equal(t, first.WorkoutExerciseID, rewritten[0].WorkoutExerciseID)
	assert.Equal(t, 1, rewritten[0].Order)
	assert.Equal(t, third.WorkoutExerciseID, rewritten[1].WorkoutExerciseID)
	assert.Equal(t, 2, rewritten[1].Order)
	m.weRepo.AssertExpectations(t)
}

func Test_workoutService_RemoveExercise_NotLinked(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).Return([]*model.WorkoutExercise{}, nil).Once()

	err := svc.RemoveExercise(ctx, userID, workout.WorkoutID, uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*model.AppError)
	require.True(t, ok)
	assert.Equal(t, "WORKOUT_EXERCISE_NOT_FOUND", appErr.Code)
}

func Test_workoutService_AddSet_NumbersSequentially(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	link := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, Order: 1}
	existing := []*model.Set{
		completedSet(link.WorkoutExerciseID, 1, 80, 8),
		completedSet(link.WorkoutExerciseID, 2, 80, 8),
	}

	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.weRepo.On("FindByID", ctx, link.WorkoutExerciseID).Return(link, nil).Once()
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{link.WorkoutExerciseID}).
		Return(existing, nil).Once()
	m.setRepo.On("Append", ctx, mock.AnythingOfType("*model.Set")).Return(nil).Once()

	// saveTotals path.
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).Return([]*model.WorkoutExercise{link}, nil).Once()
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{link.WorkoutExerciseID}).
		Return(append(existing, completedSet(link.WorkoutExerciseID, 3, 85, 6)), nil).Once()
	m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()

	set, err := svc.AddSet(ctx, userID, workout.WorkoutID, link.WorkoutExerciseID, &model.CreateSetRequest{
		Weight:    85,
		Reps:      6,
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, set.SetNumber)
	assert.True(t, set.Completed)
	require.NotNil(t, set.CompletedAt)
	assert.Equal(t, 80.0*8+80*8+85*6, workout.TotalVolume)
}

func Test_workoutService_UpdateSet_ToggleCompleted(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	workout := activeWorkout(userID)
	link := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, Order: 1}
	set := completedSet(link.WorkoutExerciseID, 1, 60, 10)

	m.workoutRepo.On("FindByID", ctx, userID, workout.WorkoutID).Return(workout, nil).Once()
	m.setRepo.On("FindByID", ctx, set.SetID).Return(set, nil).Once()
	m.weRepo.On("FindByID", ctx, link.WorkoutExerciseID).Return(link, nil).Once()
	m.setRepo.On("Update", ctx, set).Return(nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).Return([]*model.WorkoutExercise{link}, nil).Once()
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{link.WorkoutExerciseID}).
		Return([]*model.Set{set}, nil).Once()
	m.workoutRepo.On("Update", ctx, workout).Return(nil).Once()

	notDone := false
	updated, err := svc.UpdateSet(ctx, userID, workout.WorkoutID, set.SetID, &model.UpdateSetRequest{Completed: &notDone})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
	assert.Equal(t, 0.0, workout.TotalVolume)
	assert.Equal(t, 0, workout.TotalSets)
}

func Test_workoutService_CreateWorkout_InvalidDate(t *testing.T) {
	svc, _ := newWorkoutServiceForTest()

	_, err := svc.CreateWorkout(context.Background(), uuid.New(), &model.CreateWorkoutRequest{
		Title: "Leg day",
		Date:  "31-12-2024",
	})
	require.Error(t, err)
	appErr, ok := err.(*model.AppError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_INPUT", appErr.Code)
}

func Test_workoutService_GetWorkout_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workoutID := uuid.New()
	svc, m := newWorkoutServiceForTest()

	m.workoutRepo.On("FindByID", ctx, userID, workoutID).Return(nil, model.ErrNotFound).Once()

	_, err := svc.GetWorkout(ctx, userID, workoutID)
	require.Error(t, err)
	appErr, ok := err.(*model.AppError)
	require.True(t, ok)
	assert.Equal(t, "WORKOUT_NOT_FOUND", appErr.Code)
	assert.True(t, errors.Is(appErr, model.ErrNotFound))
}
