// internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/cache"
	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository"
)

// DashboardService aggregates workout history into the dashboard views.
// Store failures inside a sub-computation degrade to zero values instead
// of failing the whole read; results are memoized per user through the
// category cache.
type DashboardService interface {
	GetOverview(ctx context.Context, userID uuid.UUID) (*model.Overview, error)
	GetStats(ctx context.Context, userID uuid.UUID, period string) (*model.Stats, error)
	GetRecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Workout, error)
	GetPersonalRecords(ctx context.Context, userID uuid.UUID) ([]*model.PersonalRecordDetail, error)
	GetCalendar(ctx context.Context, userID uuid.UUID, year, month int) (*model.Calendar, error)
	GetAchievements(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error)
	GetProgress(ctx context.Context, userID uuid.UUID, period, metric string, start, end *time.Time) (*model.Progress, error)
	GetInsights(ctx context.Context, userID uuid.UUID, filter model.InsightFilter) ([]*model.Insight, error)
}

type dashboardService struct {
	workoutRepo     repository.WorkoutRepository
	weRepo          repository.WorkoutExerciseRepository
	setRepo         repository.SetRepository
	exerciseRepo    repository.ExerciseRepository
	achievementRepo repository.AchievementRepository
	recordRepo      repository.PersonalRecordRepository
	cache           cache.Cache
	now             func() time.Time
}

// DashboardOption configures the service; tests use it to pin the clock.
type DashboardOption func(*dashboardService)

func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) { s.now = now }
}

func NewDashboardService(
	workoutRepo repository.WorkoutRepository,
	weRepo repository.WorkoutExerciseRepository,
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
	achievementRepo repository.AchievementRepository,
	recordRepo repository.PersonalRecordRepository,
	c cache.Cache,
	opts ...DashboardOption,
) DashboardService {
	s := &dashboardService{
		workoutRepo:     workoutRepo,
		weRepo:          weRepo,
		setRepo:         setRepo,
		exerciseRepo:    exerciseRepo,
		achievementRepo: achievementRepo,
		recordRepo:      recordRepo,
		cache:           c,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// completedWorkouts returns the user's completed workouts, oldest last.
// A store failure is logged and degrades to an empty history.
func (s *dashboardService) completedWorkouts(ctx context.Context, userID uuid.UUID) []*model.Workout {
	workouts, _, err := s.workoutRepo.FindByUser(ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load workout history", "error", err, "user_id", userID)
		return nil
	}
	return workouts
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// daysBetween counts calendar days from b to a. Rounding absorbs DST
// offsets between midnight-normalized dates.
func daysBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Hours() / 24))
}

// distinctWorkoutDates returns the unique local calendar dates of the
// workouts, ascending.
func distinctWorkoutDates(workouts []*model.Workout) []time.Time {
	seen := make(map[time.Time]bool, len(workouts))
	dates := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		d := dateOnly(w.Date)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// currentStreak walks the distinct dates backwards from today. The first
// step tolerates an offset of 0 or 1 day, so a streak survives until the
// end of today even when today has no workout yet; every later step must
// be exactly one day.
func currentStreak(dates []time.Time, today time.Time) int {
	streak := 0
	anchor := dateOnly(today)
	for i := len(dates) - 1; i >= 0; i-- {
		diff := daysBetween(anchor, dates[i])
		if streak == 0 {
			if diff != 0 && diff != 1 {
				break
			}
		} else if diff != 1 {
			break
		}
		streak++
		anchor = dates[i]
	}
	return streak
}

// longestStreak scans ascending distinct dates for the longest run of
// consecutive days.
func longestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i], dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func (s *dashboardService) GetOverview(ctx context.Context, userID uuid.UUID) (*model.Overview, error) {
	key := cache.PrefixOverview + userID.String()
	if cached, ok := s.cache.Get(key); ok {
		if overview, ok := cached.(*model.Overview); ok {
			return overview, nil
		}
	}

	workouts := s.completedWorkouts(ctx, userID)
	overview := buildOverview(workouts, s.now())
	s.cache.Set(key, overview)
	return overview, nil
}

func buildOverview(workouts []*model.Workout, now time.Time) *model.Overview {
	overview := &model.Overview{}
	totalSeconds := 0
	for _, w := range workouts {
		overview.TotalWorkouts++
		totalSeconds += w.Duration
		overview.TotalVolume += w.TotalVolume
		overview.TotalSets += w.TotalSets
		overview.TotalReps += w.TotalReps
	}
	overview.TotalDuration = totalSeconds / 60
	if overview.TotalWorkouts > 0 {
		overview.AverageWorkoutDuration = float64(totalSeconds) / 60 / float64(overview.TotalWorkouts)
	}

	dates := distinctWorkoutDates(workouts)
	overview.CurrentStreak = currentStreak(dates, now)
	overview.LongestStreak = longestStreak(dates)
	return overview
}

// weekStart returns the most recent Sunday 00:00 local at or before t.
func weekStart(t time.Time) time.Time {
	d := dateOnly(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

func (s *dashboardService) GetStats(ctx context.Context, userID uuid.UUID, period string) (*model.Stats, error) {
	if period == "" {
		period = PeriodReferenceWeek
	}
	var periodStart time.Time
	switch period {
	case PeriodReferenceWeek:
		periodStart = weekStart(s.now())
	case PeriodReferenceMonth:
		periodStart = monthStart(s.now())
	default:
		return nil, model.NewAppError("INVALID_INPUT", "Period must be week or month.", "period", model.ErrInvalidInput)
	}

	key := fmt.Sprintf("%s%s_%s", cache.PrefixStats, userID, period)
	if cached, ok := s.cache.Get(key); ok {
		if stats, ok := cached.(*model.Stats); ok {
			return stats, nil
		}
	}

	workouts := s.completedWorkouts(ctx, userID)
	stats := &model.Stats{
		Summary: buildPeriodSummary(workouts, period, periodStart),
		Trends:  buildTrends(workouts),
	}
	s.cache.Set(key, stats)
	return stats, nil
}

// Reference periods for GetStats.
const (
	PeriodReferenceWeek  = "week"
	PeriodReferenceMonth = "month"
)

func buildPeriodSummary(workouts []*model.Workout, period string, periodStart time.Time) model.PeriodSummary {
	summary := model.PeriodSummary{Period: period, PeriodStart: periodStart}
	totalSeconds := 0
	for _, w := range workouts {
		if w.Date.Before(periodStart) {
			continue
		}
		summary.TotalWorkouts++
		totalSeconds += w.Duration
		summary.TotalVolume += w.TotalVolume
		summary.TotalSets += w.TotalSets
		summary.TotalReps += w.TotalReps
	}
	summary.TotalDuration = totalSeconds / 60
	if summary.TotalWorkouts > 0 {
		summary.AverageWorkoutDuration = float64(totalSeconds) / 60 / float64(summary.TotalWorkouts)
	}
	return summary
}

const trendWindow = 12

// buildTrends buckets every completed workout into its calendar week,
// keyed by that week's Sunday. Series are sparse and capped at the last
// 12 buckets.
func buildTrends(workouts []*model.Workout) model.Trends {
	frequency := make(map[string]float64)
	volume := make(map[string]float64)
	duration := make(map[string]float64)
	for _, w := range workouts {
		week := weekStart(w.Date).Format("2006-01-02")
		frequency[week]++
		volume[week] += w.TotalVolume
		duration[week] += float64(w.Duration) / 60
	}
	return model.Trends{
		Frequency: trendSeries(frequency),
		Volume:    trendSeries(volume),
		Duration:  trendSeries(duration),
	}
}

func trendSeries(buckets map[string]float64) []model.TrendPoint {
	weeks := make([]string, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	if len(weeks) > trendWindow {
		weeks = weeks[len(weeks)-trendWindow:]
	}
	points := make([]model.TrendPoint, 0, len(weeks))
	for _, week := range weeks {
		points = append(points, model.TrendPoint{Week: week, Value: buckets[week]})
	}
	return points
}

func (s *dashboardService) GetRecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Workout, error) {
	workouts, _, err := s.workoutRepo.FindByUser(ctx, userID, model.WorkoutFilter{Limit: limit})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load recent workouts", "error", err, "user_id", userID)
		return []*model.Workout{}, nil
	}
	return workouts, nil
}

func (s *dashboardService) GetPersonalRecords(ctx context.Context, userID uuid.UUID) ([]*model.PersonalRecordDetail, error) {
	records, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load personal records", "error", err, "user_id", userID)
		return []*model.PersonalRecordDetail{}, nil
	}
	out := make([]*model.PersonalRecordDetail, 0, len(records))
	for _, record := range records {
		exercise, err := s.exerciseRepo.FindByID(ctx, record.ExerciseID)
		if err != nil {
			exercise = nil
		}
		out = append(out, &model.PersonalRecordDetail{PersonalRecord: *record, Exercise: exercise})
	}
	return out, nil
}

func (s *dashboardService) GetCalendar(ctx context.Context, userID uuid.UUID, year, month int) (*model.Calendar, error) {
	if year < 1970 || year > 2200 || month < 1 || month > 12 {
		return nil, model.NewAppError("INVALID_INPUT", "Year or month is out of range.", "", model.ErrInvalidInput)
	}

	key := fmt.Sprintf("%s%s_%04d-%02d", cache.PrefixCalendar, userID, year, month)
	if cached, ok := s.cache.Get(key); ok {
		if calendar, ok := cached.(*model.Calendar); ok {
			return calendar, nil
		}
	}

	// The calendar shows every workout, not only completed ones.
	workouts, _, err := s.workoutRepo.FindByUser(ctx, userID, model.WorkoutFilter{})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load workouts for calendar", "error", err, "user_id", userID)
		workouts = nil
	}
	byDate := make(map[string][]*model.Workout)
	for _, w := range workouts {
		byDate[dateOnly(w.Date).Format("2006-01-02")] = append(byDate[dateOnly(w.Date).Format("2006-01-02")], w)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	calendar := &model.Calendar{Year: year, Month: month}
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		dayWorkouts := byDate[date]
		if dayWorkouts == nil {
			dayWorkouts = []*model.Workout{}
		}
		day := &model.CalendarDay{
			Date:         date,
			Workouts:     dayWorkouts,
			WorkoutCount: len(dayWorkouts),
			IsRestDay:    len(dayWorkouts) == 0,
		}
		for _, w := range dayWorkouts {
			day.TotalDuration += w.Duration / 60
			day.TotalVolume += w.TotalVolume
		}
		calendar.Days = append(calendar.Days, day)
	}

	s.cache.Set(key, calendar)
	return calendar, nil
}

// GetAchievements re-evaluates every milestone tier against the current
// metrics before returning the list. Evaluation is idempotent; on
// unchanged data it rewrites nothing.
func (s *dashboardService) GetAchievements(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	// A failed history load must not be mistaken for an empty history:
	// evaluating against it would persist regressed rows. Serve the
	// stored achievements unevaluated instead.
	workouts, _, err := s.workoutRepo.FindByUser(ctx, userID, model.WorkoutFilter{Status: model.WorkoutCompleted})
	if err != nil {
		logger.Error("Failed to load workout history; skipping achievement evaluation", "error", err)
		existing, err := s.achievementRepo.ListByUser(ctx, userID)
		if err != nil {
			logger.Error("Failed to load achievements", "error", err)
			return []*model.Achievement{}, nil
		}
		return existing, nil
	}
	dates := distinctWorkoutDates(workouts)
	metrics := map[model.AchievementType]float64{
		model.AchievementWorkoutCount: float64(len(workouts)),
		model.AchievementStreakDays:   float64(longestStreak(dates)),
	}
	for _, w := range workouts {
		metrics[model.AchievementTotalVolume] += w.TotalVolume
	}

	existing, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load achievements", "error", err)
		return []*model.Achievement{}, nil
	}
	byKey := make(map[string]*model.Achievement, len(existing))
	for _, a := range existing {
		byKey[fmt.Sprintf("%s_%v", a.Type, a.TargetValue)] = a
	}

	tiers := []struct {
		achievementType model.AchievementType
		targets         []float64
	}{
		{model.AchievementWorkoutCount, model.WorkoutCountTiers},
		{model.AchievementTotalVolume, model.TotalVolumeTiers},
		{model.AchievementStreakDays, model.StreakDayTiers},
	}

	out := make([]*model.Achievement, 0, len(existing))
	for _, tier := range tiers {
		current := metrics[tier.achievementType]
		for _, target := range tier.targets {
			achievement := byKey[fmt.Sprintf("%s_%v", tier.achievementType, target)]
			if achievement == nil {
				achievement = &model.Achievement{
					AchievementID: uuid.New(),
					UserID:        userID,
					Name:          achievementName(tier.achievementType, target),
					Type:          tier.achievementType,
					TargetValue:   target,
					CurrentValue:  current,
					Status:        model.DeriveStatus(current, target),
					Icon:          achievementIcon(tier.achievementType),
					RewardPoints:  rewardPoints(tier.achievementType, target),
				}
				if achievement.Status == model.AchievementCompleted {
					now := s.now()
					achievement.UnlockedAt = &now
				}
				if err := s.achievementRepo.Append(ctx, achievement); err != nil {
					logger.Warn("Failed to store achievement", "error", err, "type", tier.achievementType, "target", target)
				}
				out = append(out, achievement)
				continue
			}

			status := model.DeriveStatus(current, target)
			changed := achievement.CurrentValue != current || achievement.Status != status
			achievement.CurrentValue = current
			if status == model.AchievementCompleted && achievement.UnlockedAt == nil {
				now := s.now()
				achievement.UnlockedAt = &now
			}
			achievement.Status = status
			if changed {
				if err := s.achievementRepo.Update(ctx, achievement); err != nil {
					logger.Warn("Failed to update achievement", "error", err, "type", tier.achievementType, "target", target)
				}
			}
			out = append(out, achievement)
		}
	}
	return out, nil
}

func rewardPoints(achievementType model.AchievementType, target float64) int {
	return int(math.Round(model.BasePoints[achievementType] * math.Log10(target+1)))
}

func achievementName(achievementType model.AchievementType, target float64) string {
	switch achievementType {
	case model.AchievementWorkoutCount:
		return fmt.Sprintf("Complete %d workouts", int(target))
	case model.AchievementTotalVolume:
		return fmt.Sprintf("Lift %d kg of total volume", int(target))
	case model.AchievementStreakDays:
		return fmt.Sprintf("Train %d days in a row", int(target))
	default:
		return string(achievementType)
	}
}

func achievementIcon(achievementType model.AchievementType) string {
	switch achievementType {
	case model.AchievementWorkoutCount:
		return "trophy"
	case model.AchievementTotalVolume:
		return "barbell"
	case model.AchievementStreakDays:
		return "flame"
	default:
		return "star"
	}
}

var progressPeriodDays = map[string]int{
	model.PeriodWeek:    7,
	model.PeriodMonth:   30,
	model.PeriodQuarter: 90,
	model.PeriodYear:    365,
}

// GetProgress aggregates one metric per workout date. The window is the
// period's length back from end; an explicit start overrides the derived
// one.
func (s *dashboardService) GetProgress(ctx context.Context, userID uuid.UUID, period, metric string, start, end *time.Time) (*model.Progress, error) {
	days, ok := progressPeriodDays[period]
	if !ok {
		return nil, model.NewAppError("INVALID_INPUT", "Period must be week, month, quarter or year.", "period", model.ErrInvalidInput)
	}
	switch metric {
	case model.MetricVolume, model.MetricDuration, model.MetricWorkouts, model.MetricReps:
	default:
		return nil, model.NewAppError("INVALID_INPUT", "Unknown progress metric.", "metric", model.ErrInvalidInput)
	}

	endDate := dateOnly(s.now())
	if end != nil {
		endDate = dateOnly(*end)
	}
	startDate := endDate.AddDate(0, 0, -days)
	if start != nil {
		startDate = dateOnly(*start)
	}
	if startDate.After(endDate) {
		return nil, model.NewAppError("INVALID_INPUT", "start_date must not be after end_date.", "start_date", model.ErrInvalidInput)
	}

	workouts := s.completedWorkouts(ctx, userID)
	byDate := make(map[string]float64)
	for _, w := range workouts {
		d := dateOnly(w.Date)
		if d.Before(startDate) || d.After(endDate) {
			continue
		}
		key := d.Format("2006-01-02")
		switch metric {
		case model.MetricVolume:
			byDate[key] += w.TotalVolume
		case model.MetricDuration:
			byDate[key] += float64(w.Duration) / 60
		case model.MetricWorkouts:
			byDate[key]++
		case model.MetricReps:
			byDate[key] += float64(w.TotalReps)
		}
	}

	progress := &model.Progress{
		Period:    period,
		Metric:    metric,
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
	}
	if len(byDate) == 0 {
		progress.Points = flatProgressSeries(startDate, endDate)
		return progress, nil
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		progress.Points = append(progress.Points, model.ProgressPoint{Date: d, Value: byDate[d]})
	}
	return progress, nil
}

// flatProgressSeries is the no-history fallback: weekly zero samples so
// clients can still draw an axis.
func flatProgressSeries(start, end time.Time) []model.ProgressPoint {
	points := []model.ProgressPoint{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		points = append(points, model.ProgressPoint{Date: d.Format("2006-01-02"), Value: 0})
	}
	return points
}

const (
	bestTimeMinWorkouts    = 5
	bestTimeMinOccurrences = 3
	frequencyMinWorkouts   = 10
	balanceMinShare        = 0.10
)

func (s *dashboardService) GetInsights(ctx context.Context, userID uuid.UUID, filter model.InsightFilter) ([]*model.Insight, error) {
	key := cache.PrefixInsights + userID.String()
	if cached, ok := s.cache.Get(key); ok {
		if insights, ok := cached.([]*model.Insight); ok {
			return filterInsights(insights, filter), nil
		}
	}

	workouts := s.completedWorkouts(ctx, userID)
	insights := []*model.Insight{}
	if insight := s.bestTimeInsight(workouts); insight != nil {
		insights = append(insights, insight)
	}
	if insight := s.frequencyInsight(workouts); insight != nil {
		insights = append(insights, insight)
	}
	if insight := s.balanceInsight(ctx, userID, workouts); insight != nil {
		insights = append(insights, insight)
	}

	s.cache.Set(key, insights)
	return filterInsights(insights, filter), nil
}

func filterInsights(insights []*model.Insight, filter model.InsightFilter) []*model.Insight {
	out := make([]*model.Insight, 0, len(insights))
	for _, insight := range insights {
		if filter.Type != "" && insight.Type != filter.Type {
			continue
		}
		if filter.Priority != "" && insight.Priority != filter.Priority {
			continue
		}
		out = append(out, insight)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// bestTimeInsight picks the start hour with the highest mean volume among
// hours trained at least three times. Needs five completed workouts.
func (s *dashboardService) bestTimeInsight(workouts []*model.Workout) *model.Insight {
	if len(workouts) < bestTimeMinWorkouts {
		return nil
	}
	type bucket struct {
		count  int
		volume float64
	}
	hours := make(map[int]*bucket)
	for _, w := range workouts {
		h := w.StartTime.Hour()
		if hours[h] == nil {
			hours[h] = &bucket{}
		}
		hours[h].count++
		hours[h].volume += w.TotalVolume
	}

	bestHour := -1
	bestAvg := -1.0
	for h, b := range hours {
		if b.count < bestTimeMinOccurrences {
			continue
		}
		avg := b.volume / float64(b.count)
		if avg > bestAvg || (avg == bestAvg && h < bestHour) {
			bestHour = h
			bestAvg = avg
		}
	}
	if bestHour < 0 {
		return nil
	}

	return &model.Insight{
		InsightID:   uuid.New(),
		Type:        model.InsightBestTime,
		Title:       "Your strongest training hour",
		Description: fmt.Sprintf("You move the most volume when you start around %02d:00.", bestHour),
		Data:        map[string]any{"hour": bestHour, "average_volume": bestAvg},
		Priority:    model.PriorityLow,
		CreatedAt:   s.now(),
	}
}

// frequencyInsight rates the trailing-30-day weekly frequency. Needs ten
// completed workouts overall.
func (s *dashboardService) frequencyInsight(workouts []*model.Workout) *model.Insight {
	if len(workouts) < frequencyMinWorkouts {
		return nil
	}
	cutoff := s.now().AddDate(0, 0, -30)
	recent := 0
	for _, w := range workouts {
		if !w.Date.Before(cutoff) {
			recent++
		}
	}
	perWeek := float64(recent) / (30.0 / 7.0)

	insight := &model.Insight{
		InsightID: uuid.New(),
		Type:      model.InsightFrequency,
		Data:      map[string]any{"workouts_per_week": perWeek, "trailing_days": 30},
		CreatedAt: s.now(),
	}
	switch {
	case perWeek < 2:
		insight.Priority = model.PriorityHigh
		insight.Title = "Increase your training frequency"
		insight.Description = fmt.Sprintf("You averaged %.1f workouts per week over the last 30 days. Aim for at least 2.", perWeek)
	case perWeek > 6:
		insight.Priority = model.PriorityMedium
		insight.Title = "Watch your recovery"
		insight.Description = fmt.Sprintf("You averaged %.1f workouts per week over the last 30 days. Make sure you recover enough.", perWeek)
	default:
		insight.Priority = model.PriorityLow
		insight.Title = "Good training frequency"
		insight.Description = fmt.Sprintf("You averaged %.1f workouts per week over the last 30 days. Keep it up.", perWeek)
	}
	return insight
}

// balanceInsight flags muscle groups holding under 10% of the total
// completed sets, combined into one observation.
func (s *dashboardService) balanceInsight(ctx context.Context, userID uuid.UUID, workouts []*model.Workout) *model.Insight {
	logger := middleware.GetLogger(ctx)

	setsByGroup := make(map[string]int)
	total := 0
	for _, w := range workouts {
		links, err := s.weRepo.ListByWorkout(ctx, w.WorkoutID)
		if err != nil {
			logger.Warn("Failed to load workout exercises for balance insight", "error", err, "workout_id", w.WorkoutID)
			return nil
		}
		for _, link := range links {
			exercise, err := s.exerciseRepo.FindByID(ctx, link.ExerciseID)
			if err != nil {
				continue
			}
			sets, err := s.setRepo.ListByWorkoutExercises(ctx, []uuid.UUID{link.WorkoutExerciseID})
			if err != nil {
				logger.Warn("Failed to load sets for balance insight", "error", err, "workout_id", w.WorkoutID)
				return nil
			}
			for _, set := range sets {
				if set.Completed {
					setsByGroup[exercise.MuscleGroup]++
					total++
				}
			}
		}
	}
	if total == 0 {
		return nil
	}

	under := []string{}
	for group, count := range setsByGroup {
		if float64(count)/float64(total) < balanceMinShare {
			under = append(under, group)
		}
	}
	if len(under) == 0 {
		return nil
	}
	sort.Strings(under)

	description := "These muscle groups hold less than 10% of your total sets: "
	for i, group := range under {
		if i > 0 {
			description += ", "
		}
		description += group
	}
	description += "."

	return &model.Insight{
		InsightID:   uuid.New(),
		Type:        model.InsightBalance,
		Title:       "Under-trained muscle groups",
		Description: description,
		Data:        map[string]any{"muscle_groups": under, "total_sets": total},
		Priority:    model.PriorityMedium,
		CreatedAt:   s.now(),
	}
}
