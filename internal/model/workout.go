// internal/model/workout.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutStatus string

const (
	WorkoutActive    WorkoutStatus = "active"
	WorkoutPaused    WorkoutStatus = "paused"
	WorkoutCompleted WorkoutStatus = "completed"
	WorkoutCancelled WorkoutStatus = "cancelled"
)

// Workout is one training session. Totals are recomputed from completed
// sets after every set mutation, never patched incrementally. Only
// completed workouts participate in statistics.
type Workout struct {
	WorkoutID   uuid.UUID     `json:"workout_id"`
	UserID      uuid.UUID     `json:"-"`
	Title       string        `json:"title"`
	Date        time.Time     `json:"date"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     *time.Time    `json:"end_time,omitempty"`
	Duration    int           `json:"duration"` // seconds
	Status      WorkoutStatus `json:"status"`
	TotalVolume float64       `json:"total_volume"`
	TotalSets   int           `json:"total_sets"`
	TotalReps   int           `json:"total_reps"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// WorkoutExercise links a Workout to an Exercise. Order is a dense 1..N
// sequence per workout; removal triggers a renumber pass.
type WorkoutExercise struct {
	WorkoutExerciseID uuid.UUID `json:"workout_exercise_id"`
	WorkoutID         uuid.UUID `json:"-"`
	ExerciseID        uuid.UUID `json:"exercise_id"`
	Order             int       `json:"order"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Set is a single set of an exercise within a workout. Volume contribution
// is weight*reps, counted only when Completed.
type Set struct {
	SetID             uuid.UUID  `json:"set_id"`
	WorkoutExerciseID uuid.UUID  `json:"workout_exercise_id"`
	SetNumber         int        `json:"set_number"`
	Weight            float64    `json:"weight"`
	Reps              int        `json:"reps"`
	Completed         bool       `json:"completed"`
	RestTime          int        `json:"rest_time,omitempty"` // seconds
	Notes             string     `json:"notes,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Volume returns the set's volume contribution.
func (s *Set) Volume() float64 {
	if !s.Completed {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// WorkoutExerciseDetail is a WorkoutExercise joined with its catalog entry
// and sets for detail responses.
type WorkoutExerciseDetail struct {
	WorkoutExercise
	Exercise *Exercise `json:"exercise,omitempty"`
	Sets     []*Set    `json:"sets"`
}

// WorkoutDetail is a Workout with its full exercise/set tree.
type WorkoutDetail struct {
	Workout
	Exercises []*WorkoutExerciseDetail `json:"exercises"`
}

// WorkoutList is a listing plus its pre-filter total.
type WorkoutList struct {
	Items []*Workout `json:"items"`
	Total int        `json:"total"`
}

// WorkoutFilter narrows a workout listing. Nil/empty fields match everything.
type WorkoutFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    WorkoutStatus
	Limit     int
	Offset    int
}

// CreateWorkoutRequest is the body of POST /workouts. Date defaults to today.
type CreateWorkoutRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes" validate:"omitempty,max=2000"`
	TemplateID string `json:"template_id" validate:"omitempty,uuid"`
}

// UpdateWorkoutRequest is the body of PATCH /workouts/{workout_id}.
type UpdateWorkoutRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// AddWorkoutExerciseRequest is the body of POST /workouts/{id}/exercises.
type AddWorkoutExerciseRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required,uuid"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

// CreateSetRequest is the body of POST /workouts/{id}/exercises/{weid}/sets.
type CreateSetRequest struct {
	Weight    float64 `json:"weight" validate:"min=0"`
	Reps      int     `json:"reps" validate:"required,min=1"`
	Completed bool    `json:"completed"`
	RestTime  int     `json:"rest_time" validate:"omitempty,min=0"`
	Notes     string  `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateSetRequest is the body of PATCH .../sets/{set_id}.
type UpdateSetRequest struct {
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,min=0"`
	Reps      *int     `json:"reps,omitempty" validate:"omitempty,min=1"`
	Completed *bool    `json:"completed,omitempty"`
	RestTime  *int     `json:"rest_time,omitempty" validate:"omitempty,min=0"`
	Notes     *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
