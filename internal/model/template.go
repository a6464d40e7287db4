// internal/model/template.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable workout blueprint.
type Template struct {
	TemplateID  uuid.UUID `json:"template_id"`
	UserID      uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TemplateExercise is one slot of a template. Order is a dense 1..N
// sequence per template, same as WorkoutExercise.
type TemplateExercise struct {
	TemplateExerciseID uuid.UUID `json:"template_exercise_id"`
	TemplateID         uuid.UUID `json:"-"`
	ExerciseID         uuid.UUID `json:"exercise_id"`
	Order              int       `json:"order"`
	DefaultSets        int       `json:"default_sets"`
	DefaultReps        int       `json:"default_reps"`
	DefaultWeight      float64   `json:"default_weight"`
}

// TemplateDetail is a Template with its exercises resolved.
type TemplateDetail struct {
	Template
	Exercises []*TemplateExerciseDetail `json:"exercises"`
}

// TemplateExerciseDetail joins a slot with its catalog entry.
type TemplateExerciseDetail struct {
	TemplateExercise
	Exercise *Exercise `json:"exercise,omitempty"`
}

// CreateTemplateRequest is the body of POST /templates.
type CreateTemplateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateTemplateRequest is the body of PATCH /templates/{template_id}.
type UpdateTemplateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// AddTemplateExerciseRequest is the body of POST /templates/{id}/exercises.
type AddTemplateExerciseRequest struct {
	ExerciseID    string  `json:"exercise_id" validate:"required,uuid"`
	DefaultSets   int     `json:"default_sets" validate:"omitempty,min=1,max=50"`
	DefaultReps   int     `json:"default_reps" validate:"omitempty,min=1,max=500"`
	DefaultWeight float64 `json:"default_weight" validate:"omitempty,min=0"`
}
