// internal/model/achievement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AchievementType string

const (
	AchievementWorkoutCount   AchievementType = "workout_count"
	AchievementTotalVolume    AchievementType = "total_volume"
	AchievementStreakDays     AchievementType = "streak_days"
	AchievementPersonalRecord AchievementType = "personal_record"
	AchievementMilestone      AchievementType = "milestone"
)

type AchievementStatus string

const (
	AchievementLocked     AchievementStatus = "locked"
	AchievementInProgress AchievementStatus = "in_progress"
	AchievementCompleted  AchievementStatus = "completed"
)

// Achievement is one milestone tier for one user. There is exactly one row
// per (user, type, target_value); current_value is recomputed from source
// data on each access. UnlockedAt is stamped once, on the transition into
// completed, and never cleared.
type Achievement struct {
	AchievementID uuid.UUID         `json:"achievement_id"`
	UserID        uuid.UUID         `json:"-"`
	Name          string            `json:"name"`
	Type          AchievementType   `json:"type"`
	TargetValue   float64           `json:"target_value"`
	CurrentValue  float64           `json:"current_value"`
	Status        AchievementStatus `json:"status"`
	Icon          string            `json:"icon"`
	RewardPoints  int               `json:"reward_points"`
	UnlockedAt    *time.Time        `json:"unlocked_at,omitempty"`
}

// DeriveStatus maps a current/target pair to a status.
func DeriveStatus(current, target float64) AchievementStatus {
	switch {
	case current >= target:
		return AchievementCompleted
	case current > 0:
		return AchievementInProgress
	default:
		return AchievementLocked
	}
}

// Fixed milestone tiers per achievement type.
var (
	WorkoutCountTiers = []float64{10, 25, 50, 100, 200, 500, 1000}
	TotalVolumeTiers  = []float64{1000, 5000, 10000, 25000, 50000, 100000}
	StreakDayTiers    = []float64{7, 14, 30, 60, 100, 365}
)

// BasePoints seeds the reward formula round(base * log10(target+1)).
var BasePoints = map[AchievementType]float64{
	AchievementWorkoutCount:   10,
	AchievementTotalVolume:    5,
	AchievementStreakDays:     15,
	AchievementPersonalRecord: 20,
	AchievementMilestone:      25,
}

// PersonalRecord is the best known value per (user, exercise).
type PersonalRecord struct {
	RecordID       uuid.UUID `json:"pr_id"`
	UserID         uuid.UUID `json:"-"`
	ExerciseID     uuid.UUID `json:"exercise_id"`
	MaxWeight      float64   `json:"max_weight"`
	MaxReps        int       `json:"max_reps"`
	MaxVolume      float64   `json:"max_volume"`
	AchievedAt     time.Time `json:"achieved_at"`
	WorkoutID      uuid.UUID `json:"workout_id"`
	PreviousRecord *float64  `json:"previous_record,omitempty"`
}

// PersonalRecordDetail joins a record with its catalog entry.
type PersonalRecordDetail struct {
	PersonalRecord
	Exercise *Exercise `json:"exercise,omitempty"`
}
