// internal/model/dashboard.go
package model

import "time"

// Overview is the headline statistics block: whole-history sums plus
// streaks. Durations are minutes.
type Overview struct {
	TotalWorkouts          int     `json:"total_workouts"`
	TotalDuration          int     `json:"total_duration"`
	TotalVolume            float64 `json:"total_volume"`
	TotalSets              int     `json:"total_sets"`
	TotalReps              int     `json:"total_reps"`
	AverageWorkoutDuration float64 `json:"average_workout_duration"`
	CurrentStreak          int     `json:"current_streak"`
	LongestStreak          int     `json:"longest_streak"`
}

// PeriodSummary is the Overview shape restricted to one reference period.
type PeriodSummary struct {
	Period                 string    `json:"period"`
	PeriodStart            time.Time `json:"period_start"`
	TotalWorkouts          int       `json:"total_workouts"`
	TotalDuration          int       `json:"total_duration"`
	TotalVolume            float64   `json:"total_volume"`
	TotalSets              int       `json:"total_sets"`
	TotalReps              int       `json:"total_reps"`
	AverageWorkoutDuration float64   `json:"average_workout_duration"`
}

// TrendPoint is one weekly bucket of a trend series. Week is the bucket
// week's Sunday as an ISO date string. Series are sparse: weeks with no
// activity do not appear.
type TrendPoint struct {
	Week  string  `json:"week"`
	Value float64 `json:"value"`
}

// Trends carries the three weekly series, each capped at the last 12 buckets.
type Trends struct {
	Frequency []TrendPoint `json:"frequency"`
	Volume    []TrendPoint `json:"volume"`
	Duration  []TrendPoint `json:"duration"`
}

// Stats is the response of GET /dashboard/stats.
type Stats struct {
	Summary PeriodSummary `json:"summary"`
	Trends  Trends        `json:"trends"`
}

// CalendarDay is one date of a calendar month with its workouts attached.
type CalendarDay struct {
	Date          string     `json:"date"`
	Workouts      []*Workout `json:"workouts"`
	WorkoutCount  int        `json:"workout_count"`
	TotalDuration int        `json:"total_duration"` // minutes
	TotalVolume   float64    `json:"total_volume"`
	IsRestDay     bool       `json:"is_rest_day"`
}

// Calendar is the response of GET /dashboard/calendar.
type Calendar struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  []*CalendarDay `json:"days"`
}

// ProgressPoint is one per-date aggregate of a progress series.
type ProgressPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Progress is the response of GET /dashboard/progress.
type Progress struct {
	Period    string          `json:"period"`
	Metric    string          `json:"metric"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Points    []ProgressPoint `json:"points"`
}

// Progress periods and metrics accepted by GET /dashboard/progress.
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"

	MetricVolume   = "volume"
	MetricDuration = "duration"
	MetricWorkouts = "workouts"
	MetricReps     = "reps"
)
