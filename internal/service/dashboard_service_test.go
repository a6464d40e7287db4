// internal/service/dashboard_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chia199712/Fitness-Web-sub000/internal/cache"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository/mocks"
)

type dashboardMocks struct {
	workoutRepo     *mocks.WorkoutRepository
	weRepo          *mocks.WorkoutExerciseRepository
	setRepo         *mocks.SetRepository
	exerciseRepo    *mocks.ExerciseRepository
	achievementRepo *mocks.AchievementRepository
	recordRepo      *mocks.PersonalRecordRepository
}

func newDashboardForTest(now time.Time) (DashboardService, *dashboardMocks) {
	m := &dashboardMocks{
		workoutRepo:     new(mocks.WorkoutRepository),
		weRepo:          new(mocks.WorkoutExerciseRepository),
		setRepo:         new(mocks.SetRepository),
		exerciseRepo:    new(mocks.ExerciseRepository),
		achievementRepo: new(mocks.AchievementRepository),
		recordRepo:      new(mocks.PersonalRecordRepository),
	}
	svc := NewDashboardService(
		m.workoutRepo, m.weRepo, m.setRepo, m.exerciseRepo,
		m.achievementRepo, m.recordRepo,
		cache.New(cache.WithClock(func() time.Time { return now })),
		WithDashboardClock(func() time.Time { return now }),
	)
	return svc, m
}

func completedWorkout(userID uuid.UUID, date time.Time, volume float64, durationSec int) *model.Workout {
	return &model.Workout{
		WorkoutID:   uuid.New(),
		UserID:      userID,
		Title:       "session",
		Date:        date,
		StartTime:   date.Add(18 * time.Hour),
		Duration:    durationSec,
		Status:      model.WorkoutCompleted,
		TotalVolume: volume,
		TotalSets:   3,
		TotalReps:   30,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func Test_currentStreak(t *testing.T) {
	today := day(2024, 1, 5)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty history", nil, 0},
		{
			"unbroken daily run ending today",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 4), day(2024, 1, 5)},
			5,
		},
		{
			"run ending yesterday still counts",
			[]time.Time{day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 4)},
			3,
		},
		{
			"gap before yesterday stops the walk",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 4)},
			1,
		},
		{
			"history older than yesterday gives zero",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2)},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currentStreak(tt.dates, today))
		})
	}
}

func Test_longestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty history", nil, 0},
		{"single date", []time.Time{day(2024, 1, 1)}, 1},
		{
			"unbroken run of five",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 4), day(2024, 1, 5)},
			5,
		},
		{
			"gap keeps the longest run at two",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 5)},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, longestStreak(tt.dates))
		})
	}
}

func Test_dashboardService_GetOverview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := day(2024, 1, 5).Add(20 * time.Hour)
	svc, m := newDashboardForTest(now)

	workouts := []*model.Workout{}
	for d := 1; d <= 5; d++ {
		workouts = append(workouts, completedWorkout(userID, day(2024, 1, d), 100, 3600))
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, len(workouts), nil).Once()

	overview, err := svc.GetOverview(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, overview.TotalWorkouts)
	assert.Equal(t, 300, overview.TotalDuration)
	assert.Equal(t, 500.0, overview.TotalVolume)
	assert.Equal(t, 15, overview.TotalSets)
	assert.Equal(t, 150, overview.TotalReps)
	assert.Equal(t, 60.0, overview.AverageWorkoutDuration)
	assert.Equal(t, 5, overview.CurrentStreak)
	assert.Equal(t, 5, overview.LongestStreak)

	// Second read is served from the cache; the mock allows one call only.
	again, err := svc.GetOverview(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, overview, again)
	m.workoutRepo.AssertExpectations(t)
}

func Test_dashboardService_GetOverview_StoreFailureDegrades(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 1, 5))

	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(nil, 0, assert.AnError).Once()

	overview, err := svc.GetOverview(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, overview.TotalWorkouts)
	assert.Equal(t, 0, overview.CurrentStreak)
}

func Test_dashboardService_GetStats_TrendBucketing(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	// 2024-01-07 is a Sunday.
	now := day(2024, 1, 10).Add(12 * time.Hour)
	svc, m := newDashboardForTest(now)

	workouts := []*model.Workout{
		completedWorkout(userID, day(2024, 1, 8), 100, 1800),
		completedWorkout(userID, day(2024, 1, 10), 50, 1800),
		completedWorkout(userID, day(2024, 1, 3), 80, 1800), // previous week
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, len(workouts), nil).Once()

	stats, err := svc.GetStats(ctx, userID, "week")
	require.NoError(t, err)

	assert.Equal(t, "week", stats.Summary.Period)
	assert.Equal(t, day(2024, 1, 7), stats.Summary.PeriodStart)
	// Only the two workouts since Sunday count for the summary.
	assert.Equal(t, 2, stats.Summary.TotalWorkouts)
	assert.Equal(t, 150.0, stats.Summary.TotalVolume)

	require.Len(t, stats.Trends.Volume, 2)
	assert.Equal(t, model.TrendPoint{Week: "2023-12-31", Value: 80}, stats.Trends.Volume[0])
	assert.Equal(t, model.TrendPoint{Week: "2024-01-07", Value: 150}, stats.Trends.Volume[1])

	require.Len(t, stats.Trends.Frequency, 2)
	assert.Equal(t, 2.0, stats.Trends.Frequency[1].Value)
}

func Test_dashboardService_GetStats_InvalidPeriod(t *testing.T) {
	svc, _ := newDashboardForTest(day(2024, 1, 10))

	_, err := svc.GetStats(context.Background(), uuid.New(), "decade")
	require.Error(t, err)
	appErr, ok := err.(*model.AppError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_INPUT", appErr.Code)
}

func Test_dashboardService_GetCalendar_LeapFebruary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 3, 1))

	workout := completedWorkout(userID, day(2024, 2, 10), 120, 3600)
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{}).
		Return([]*model.Workout{workout}, 1, nil).Once()

	calendar, err := svc.GetCalendar(ctx, userID, 2024, 2)
	require.NoError(t, err)
	require.Len(t, calendar.Days, 29)

	for _, d := range calendar.Days {
		if d.Date == "2024-02-10" {
			assert.False(t, d.IsRestDay)
			assert.Equal(t, 1, d.WorkoutCount)
			assert.Equal(t, 60, d.TotalDuration)
			assert.Equal(t, 120.0, d.TotalVolume)
		} else {
			assert.True(t, d.IsRestDay, "expected %s to be a rest day", d.Date)
			assert.Empty(t, d.Workouts)
		}
	}
}

func Test_dashboardService_GetCalendar_InvalidMonth(t *testing.T) {
	svc, _ := newDashboardForTest(day(2024, 1, 10))

	_, err := svc.GetCalendar(context.Background(), uuid.New(), 2024, 13)
	require.Error(t, err)
}

func Test_dashboardService_GetAchievements_TransitionStampsUnlockedOnce(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := day(2024, 4, 1).Add(9 * time.Hour)
	svc, m := newDashboardForTest(now)

	makeHistory := func(n int) []*model.Workout {
		workouts := make([]*model.Workout, 0, n)
		for i := 0; i < n; i++ {
			workouts = append(workouts, completedWorkout(userID, day(2024, 1, 1).AddDate(0, 0, i*3), 10, 1800))
		}
		return workouts
	}

	// The achievement store accumulates appended rows so the second
	// evaluation sees what the first one wrote.
	var stored []*model.Achievement
	m.achievementRepo.On("ListByUser", ctx, userID).
		Return(func(context.Context, uuid.UUID) []*model.Achievement { return stored }, nil)
	m.achievementRepo.On("Append", ctx, mock.AnythingOfType("*model.Achievement")).
		Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*model.Achievement))
		}).Return(nil)
	m.achievementRepo.On("Update", ctx, mock.AnythingOfType("*model.Achievement")).Return(nil)

	// 9 completed workouts: threshold 10 still in progress.
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(makeHistory(9), 9, nil).Once()
	achievements, err := svc.GetAchievements(ctx, userID)
	require.NoError(t, err)

	ten := findAchievement(t, achievements, model.AchievementWorkoutCount, 10)
	assert.Equal(t, model.AchievementInProgress, ten.Status)
	assert.Equal(t, 9.0, ten.CurrentValue)
	assert.Nil(t, ten.UnlockedAt)
	assert.Equal(t, 10, ten.RewardPoints) // round(10 * log10(11))

	// Crossing to 10 flips it to completed and stamps unlocked_at.
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(makeHistory(10), 10, nil).Once()
	achievements, err = svc.GetAchievements(ctx, userID)
	require.NoError(t, err)

	ten = findAchievement(t, achievements, model.AchievementWorkoutCount, 10)
	assert.Equal(t, model.AchievementCompleted, ten.Status)
	require.NotNil(t, ten.UnlockedAt)
	firstUnlock := *ten.UnlockedAt

	// A further increase must not move the unlock timestamp.
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(makeHistory(11), 11, nil).Once()
	achievements, err = svc.GetAchievements(ctx, userID)
	require.NoError(t, err)

	ten = findAchievement(t, achievements, model.AchievementWorkoutCount, 10)
	assert.Equal(t, 11.0, ten.CurrentValue)
	assert.Equal(t, firstUnlock, *ten.UnlockedAt)

	// One row per (type, target): re-evaluation never duplicates.
	counts := make(map[string]int)
	for _, a := range stored {
		counts[string(a.Type)+"_"+a.Name]++
	}
	for key, n := range counts {
		assert.Equal(t, 1, n, "duplicate achievement row for %s", key)
	}
}

func Test_dashboardService_GetAchievements_Idempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	workouts := []*model.Workout{completedWorkout(userID, day(2024, 3, 30), 500, 3600)}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, 1, nil).Twice()

	var stored []*model.Achievement
	m.achievementRepo.On("ListByUser", ctx, userID).
		Return(func(context.Context, uuid.UUID) []*model.Achievement { return stored }, nil)
	m.achievementRepo.On("Append", ctx, mock.AnythingOfType("*model.Achievement")).
		Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*model.Achievement))
		}).Return(nil)

	first, err := svc.GetAchievements(ctx, userID)
	require.NoError(t, err)
	second, err := svc.GetAchievements(ctx, userID)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CurrentValue, second[i].CurrentValue)
		assert.Equal(t, first[i].Status, second[i].Status)
	}
	// Unchanged data must not trigger any Update.
	m.achievementRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func Test_dashboardService_GetAchievements_SkipsEvaluationOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	unlocked := day(2024, 3, 1)
	stored := []*model.Achievement{{
		AchievementID: uuid.New(),
		UserID:        userID,
		Name:          "Complete 10 workouts",
		Type:          model.AchievementWorkoutCount,
		TargetValue:   10,
		CurrentValue:  12,
		Status:        model.AchievementCompleted,
		UnlockedAt:    &unlocked,
	}}

	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(nil, 0, assert.AnError).Once()
	m.achievementRepo.On("ListByUser", ctx, userID).Return(stored, nil).Once()

	achievements, err := svc.GetAchievements(ctx, userID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, 12.0, achievements[0].CurrentValue)
	assert.Equal(t, model.AchievementCompleted, achievements[0].Status)

	// A transient outage must not write regressed rows.
	m.achievementRepo.AssertNotCalled(t, "Append", ctx, mock.Anything)
	m.achievementRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func findAchievement(t *testing.T, achievements []*model.Achievement, achievementType model.AchievementType, target float64) *model.Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.Type == achievementType && a.TargetValue == target {
			return a
		}
	}
	t.Fatalf("achievement %s/%v not found", achievementType, target)
	return nil
}

func Test_dashboardService_GetInsights_SuppressedOnThinHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	// Three completed workouts: below both the best-time (5) and
	// frequency (10) thresholds.
	workouts := []*model.Workout{
		completedWorkout(userID, day(2024, 3, 28), 100, 3600),
		completedWorkout(userID, day(2024, 3, 29), 100, 3600),
		completedWorkout(userID, day(2024, 3, 30), 100, 3600),
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, 3, nil).Once()
	for _, w := range workouts {
		m.weRepo.On("ListByWorkout", ctx, w.WorkoutID).Return([]*model.WorkoutExercise{}, nil)
	}

	insights, err := svc.GetInsights(ctx, userID, model.InsightFilter{})
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func Test_dashboardService_GetInsights_BestTimeHour(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	// Morning hour trained three times at modest volume; evening hour
	// only twice at a much higher average, so it stays below the
	// occurrence floor and must not win.
	workouts := []*model.Workout{}
	for i := 0; i < 3; i++ {
		w := completedWorkout(userID, day(2024, 3, 10+i), 100, 3600)
		w.StartTime = day(2024, 3, 10+i).Add(7 * time.Hour)
		workouts = append(workouts, w)
	}
	for i := 0; i < 2; i++ {
		w := completedWorkout(userID, day(2024, 3, 20+i), 500, 3600)
		w.StartTime = day(2024, 3, 20+i).Add(19 * time.Hour)
		workouts = append(workouts, w)
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, len(workouts), nil).Once()
	for _, w := range workouts {
		m.weRepo.On("ListByWorkout", ctx, w.WorkoutID).Return([]*model.WorkoutExercise{}, nil)
	}

	insights, err := svc.GetInsights(ctx, userID, model.InsightFilter{Type: model.InsightBestTime})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, model.InsightBestTime, insights[0].Type)
	assert.Equal(t, 7, insights[0].Data["hour"])
	assert.Equal(t, 100.0, insights[0].Data["average_volume"])
	assert.Contains(t, insights[0].Description, "07:00")
}

func Test_dashboardService_GetInsights_BalanceFlagsUnderTrainedGroups(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	workout := completedWorkout(userID, day(2024, 3, 20), 500, 3600)
	chest := &model.Exercise{ExerciseID: uuid.New(), Name: "Barbell Bench Press", MuscleGroup: "chest"}
	arms := &model.Exercise{ExerciseID: uuid.New(), Name: "Barbell Curl", MuscleGroup: "arms"}
	chestLink := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, ExerciseID: chest.ExerciseID, Order: 1}
	armsLink := &model.WorkoutExercise{WorkoutExerciseID: uuid.New(), WorkoutID: workout.WorkoutID, ExerciseID: arms.ExerciseID, Order: 2}

	// 19 completed chest sets against a single completed arms set puts
	// arms at 5% of the total; the uncompleted arms set must not count.
	chestSets := []*model.Set{}
	for i := 0; i < 19; i++ {
		chestSets = append(chestSets, completedSet(chestLink.WorkoutExerciseID, i+1, 80, 8))
	}
	armsSets := []*model.Set{
		completedSet(armsLink.WorkoutExerciseID, 1, 20, 12),
		{SetID: uuid.New(), WorkoutExerciseID: armsLink.WorkoutExerciseID, SetNumber: 2, Weight: 20, Reps: 12},
	}

	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return([]*model.Workout{workout}, 1, nil).Once()
	m.weRepo.On("ListByWorkout", ctx, workout.WorkoutID).
		Return([]*model.WorkoutExercise{chestLink, armsLink}, nil)
	m.exerciseRepo.On("FindByID", ctx, chest.ExerciseID).Return(chest, nil)
	m.exerciseRepo.On("FindByID", ctx, arms.ExerciseID).Return(arms, nil)
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{chestLink.WorkoutExerciseID}).Return(chestSets, nil)
	m.setRepo.On("ListByWorkoutExercises", ctx, []uuid.UUID{armsLink.WorkoutExerciseID}).Return(armsSets, nil)

	insights, err := svc.GetInsights(ctx, userID, model.InsightFilter{Type: model.InsightBalance})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, model.InsightBalance, insights[0].Type)
	assert.Equal(t, model.PriorityMedium, insights[0].Priority)
	assert.Equal(t, []string{"arms"}, insights[0].Data["muscle_groups"])
	assert.Equal(t, 20, insights[0].Data["total_sets"])
	assert.Contains(t, insights[0].Description, "arms")
	assert.NotContains(t, insights[0].Description, "chest")
}

func Test_dashboardService_GetInsights_FrequencyPriorities(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := day(2024, 4, 1).Add(12 * time.Hour)
	svc, m := newDashboardForTest(now)

	// Twelve completed workouts, but only four within the trailing 30
	// days: below 2/week, so the frequency insight is high priority.
	workouts := []*model.Workout{}
	for i := 0; i < 8; i++ {
		workouts = append(workouts, completedWorkout(userID, day(2023, 11, 1).AddDate(0, 0, i), 100, 3600))
	}
	for i := 0; i < 4; i++ {
		workouts = append(workouts, completedWorkout(userID, day(2024, 3, 20).AddDate(0, 0, i), 100, 3600))
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, len(workouts), nil).Once()
	for _, w := range workouts {
		m.weRepo.On("ListByWorkout", ctx, w.WorkoutID).Return([]*model.WorkoutExercise{}, nil)
	}

	insights, err := svc.GetInsights(ctx, userID, model.InsightFilter{Type: model.InsightFrequency})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, model.PriorityHigh, insights[0].Priority)
}

func Test_dashboardService_GetProgress_FallbackSeries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return([]*model.Workout{}, 0, nil).Once()

	progress, err := svc.GetProgress(ctx, userID, model.PeriodMonth, model.MetricVolume, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", progress.StartDate)
	assert.Equal(t, "2024-04-01", progress.EndDate)
	require.NotEmpty(t, progress.Points)
	for _, p := range progress.Points {
		assert.Equal(t, 0.0, p.Value)
	}
}

func Test_dashboardService_GetProgress_PerDateAggregates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	workouts := []*model.Workout{
		completedWorkout(userID, day(2024, 3, 20), 100, 3600),
		completedWorkout(userID, day(2024, 3, 20), 40, 1800),
		completedWorkout(userID, day(2024, 3, 25), 60, 3600),
		completedWorkout(userID, day(2023, 1, 1), 999, 3600), // out of range
	}
	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return(workouts, len(workouts), nil).Once()

	progress, err := svc.GetProgress(ctx, userID, model.PeriodMonth, model.MetricVolume, nil, nil)
	require.NoError(t, err)
	require.Len(t, progress.Points, 2)
	assert.Equal(t, model.ProgressPoint{Date: "2024-03-20", Value: 140}, progress.Points[0])
	assert.Equal(t, model.ProgressPoint{Date: "2024-03-25", Value: 60}, progress.Points[1])
}

func Test_dashboardService_GetProgress_ExplicitWindow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newDashboardForTest(day(2024, 4, 1))

	m.workoutRepo.On("FindByUser", ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted}).
		Return([]*model.Workout{}, 0, nil).Once()

	start := day(2024, 3, 15)
	end := day(2024, 3, 25)
	progress, err := svc.GetProgress(ctx, userID, model.PeriodMonth, model.MetricVolume, &start, &end)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", progress.StartDate)
	assert.Equal(t, "2024-03-25", progress.EndDate)

	_, err = svc.GetProgress(ctx, userID, model.PeriodMonth, model.MetricVolume, &end, &start)
	require.Error(t, err)
}

func Test_dashboardService_GetProgress_InvalidMetric(t *testing.T) {
	svc, _ := newDashboardForTest(day(2024, 4, 1))

	_, err := svc.GetProgress(context.Background(), uuid.New(), model.PeriodWeek, "steps", nil, nil)
	require.Error(t, err)
}
