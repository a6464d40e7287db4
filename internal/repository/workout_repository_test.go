// internal/repository/workout_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

func testWorkout(userID uuid.UUID, date time.Time, status model.WorkoutStatus) *model.Workout {
	start := date.Add(18 * time.Hour)
	return &model.Workout{
		WorkoutID:   uuid.New(),
		UserID:      userID,
		Title:       "Push day",
		Date:        date,
		StartTime:   start,
		Duration:    3600,
		Status:      status,
		TotalVolume: 1250.5,
		TotalSets:   12,
		TotalReps:   96,
		Notes:       "felt strong",
		CreatedAt:   start,
		UpdatedAt:   start,
	}
}

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSheetWorkoutRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetWorkoutRepository(sheets.NewMemoryStore())
	userID := uuid.New()

	workout := testWorkout(userID, localDate(2024, 3, 10), model.WorkoutCompleted)
	end := workout.StartTime.Add(time.Hour)
	workout.EndTime = &end

	require.NoError(t, repo.Create(ctx, workout))

	got, err := repo.FindByID(ctx, userID, workout.WorkoutID)
	require.NoError(t, err)
	assert.Equal(t, workout.WorkoutID, got.WorkoutID)
	assert.Equal(t, workout.Title, got.Title)
	assert.True(t, got.Date.Equal(workout.Date))
	assert.True(t, got.StartTime.Equal(workout.StartTime))
	require.NotNil(t, got.EndTime)
	assert.True(t, got.EndTime.Equal(end))
	assert.Equal(t, workout.Duration, got.Duration)
	assert.Equal(t, model.WorkoutCompleted, got.Status)
	assert.Equal(t, workout.TotalVolume, got.TotalVolume)
	assert.Equal(t, workout.TotalSets, got.TotalSets)
	assert.Equal(t, workout.TotalReps, got.TotalReps)
	assert.Equal(t, workout.Notes, got.Notes)

	// Another user cannot see it.
	_, err = repo.FindByID(ctx, uuid.New(), workout.WorkoutID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSheetWorkoutRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetWorkoutRepository(sheets.NewMemoryStore())
	userID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, repo.Create(ctx, testWorkout(userID, localDate(2024, 3, 1), model.WorkoutCompleted)))
	require.NoError(t, repo.Create(ctx, testWorkout(userID, localDate(2024, 3, 5), model.WorkoutCancelled)))
	require.NoError(t, repo.Create(ctx, testWorkout(userID, localDate(2024, 3, 9), model.WorkoutCompleted)))
	require.NoError(t, repo.Create(ctx, testWorkout(otherID, localDate(2024, 3, 9), model.WorkoutCompleted)))

	t.Run("scoped to the user, newest first", func(t *testing.T) {
		got, total, err := repo.FindByUser(ctx, userID, model.WorkoutFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, got, 3)
		assert.True(t, got[0].Date.After(got[1].Date))
		assert.True(t, got[1].Date.After(got[2].Date))
	})

	t.Run("status filter", func(t *testing.T) {
		got, total, err := repo.FindByUser(ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, w := range got {
			assert.Equal(t, model.WorkoutCompleted, w.Status)
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		start := localDate(2024, 3, 2)
		end := localDate(2024, 3, 8)
		got, total, err := repo.FindByUser(ctx, userID, model.WorkoutFilter{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.True(t, got[0].Date.Equal(localDate(2024, 3, 5)))
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		got, total, err := repo.FindByUser(ctx, userID, model.WorkoutFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, got, 1)
		assert.True(t, got[0].Date.Equal(localDate(2024, 3, 5)))
	})

	t.Run("offset past the end", func(t *testing.T) {
		got, total, err := repo.FindByUser(ctx, userID, model.WorkoutFilter{Offset: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, got)
	})
}

func TestSheetWorkoutRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSheetWorkoutRepository(sheets.NewMemoryStore())
	userID := uuid.New()

	workout := testWorkout(userID, localDate(2024, 3, 10), model.WorkoutActive)
	require.NoError(t, repo.Create(ctx, workout))

	workout.Status = model.WorkoutCompleted
	workout.TotalVolume = 2000
	require.NoError(t, repo.Update(ctx, workout))

	got, err := repo.FindByID(ctx, userID, workout.WorkoutID)
	require.NoError(t, err)
	assert.Equal(t, model.WorkoutCompleted, got.Status)
	assert.Equal(t, 2000.0, got.TotalVolume)

	require.NoError(t, repo.Delete(ctx, userID, workout.WorkoutID))
	_, err = repo.FindByID(ctx, userID, workout.WorkoutID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, userID, workout.WorkoutID), model.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, workout), model.ErrNotFound)
}

func TestSheetWorkoutRepository_MalformedRowFailsLoudly(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewSheetWorkoutRepository(store)

	require.NoError(t, store.AppendRows(ctx, sheets.SheetWorkouts, [][]string{
		{"not-a-uuid", uuid.NewString(), "Leg day", "2024-03-10"},
	}))

	_, _, err := repo.FindByUser(ctx, uuid.New(), model.WorkoutFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workout_id")
}
