// internal/model/exercise.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry. System exercises have a nil UserID and are
// visible to everyone; custom exercises belong to one user.
type Exercise struct {
	ExerciseID  uuid.UUID `json:"exercise_id"`
	UserID      uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MuscleGroup string    `json:"muscle_group"`
	Equipment   string    `json:"equipment,omitempty"`
	Description string    `json:"description,omitempty"`
	IsCustom    bool      `json:"is_custom"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Exercise categories.
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
)

// CreateExerciseRequest is the body of POST /exercises.
type CreateExerciseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Category    string `json:"category" validate:"required,oneof=strength cardio flexibility"`
	MuscleGroup string `json:"muscle_group" validate:"required,min=1,max=50"`
	Equipment   string `json:"equipment" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateExerciseRequest is the body of PATCH /exercises/{exercise_id}.
type UpdateExerciseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=strength cardio flexibility"`
	MuscleGroup *string `json:"muscle_group,omitempty" validate:"omitempty,min=1,max=50"`
	Equipment   *string `json:"equipment,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ExerciseFilter narrows an exercise listing. Empty fields match everything.
type ExerciseFilter struct {
	Category    string
	MuscleGroup string
	Keyword     string
}
