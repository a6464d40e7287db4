// internal/repository/exercise_repository.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// ExerciseRepository provides CRUD over the exercises sheet. System
// exercises (nil user_id) are visible to every user.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	FindByID(ctx context.Context, exerciseID uuid.UUID) (*model.Exercise, error)
	FindForUser(ctx context.Context, userID uuid.UUID, filter model.ExerciseFilter) ([]*model.Exercise, error)
	Update(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, exerciseID uuid.UUID) error
	NameExists(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
}

type sheetExerciseRepository struct {
	store sheets.Store
}

func NewSheetExerciseRepository(store sheets.Store) ExerciseRepository {
	return &sheetExerciseRepository{store: store}
}

func exerciseToRow(e *model.Exercise) []string {
	return []string{
		fmtUUID(e.ExerciseID),
		fmtUUID(e.UserID),
		e.Name,
		e.Category,
		e.MuscleGroup,
		e.Equipment,
		e.Description,
		fmtBool(e.IsCustom),
		fmtTime(e.CreatedAt),
		fmtTime(e.UpdatedAt),
	}
}

func parseExerciseRow(row []string, idx int) (*model.Exercise, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetExercises]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetExercises, idx, "exercise_id", err)
	}
	userID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetExercises, idx, "user_id", err)
	}
	isCustom, err := parseBoolCell(row[7])
	if err != nil {
		return nil, rowErr(sheets.SheetExercises, idx, "is_custom", err)
	}
	createdAt, err := parseTimeCell(row[8])
	if err != nil {
		return nil, rowErr(sheets.SheetExercises, idx, "created_at", err)
	}
	updatedAt, err := parseTimeCell(row[9])
	if err != nil {
		return nil, rowErr(sheets.SheetExercises, idx, "updated_at", err)
	}

	return &model.Exercise{
		ExerciseID:  id,
		UserID:      userID,
		Name:        row[2],
		Category:    row[3],
		MuscleGroup: row[4],
		Equipment:   row[5],
		Description: row[6],
		IsCustom:    isCustom,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (r *sheetExerciseRepository) readAll(ctx context.Context) ([]*model.Exercise, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetExercises)
	if err != nil {
		return nil, fmt.Errorf("sheetExerciseRepository.readAll: %w", err)
	}
	exercises := make([]*model.Exercise, 0, len(rows))
	for i, row := range rows {
		e, err := parseExerciseRow(row, i)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}

func (r *sheetExerciseRepository) writeAll(ctx context.Context, exercises []*model.Exercise) error {
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, exerciseToRow(e))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetExercises, rows); err != nil {
		return fmt.Errorf("sheetExerciseRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	logger := middleware.GetLogger(ctx)
	if err := r.store.AppendRows(ctx, sheets.SheetExercises, [][]string{exerciseToRow(exercise)}); err != nil {
		logger.Error("Error appending exercise row",
			"error", err,
			"exercise_id", exercise.ExerciseID.String(),
		)
		return fmt.Errorf("sheetExerciseRepository.Create: %w", err)
	}
	return nil
}

func (r *sheetExerciseRepository) FindByID(ctx context.Context, exerciseID uuid.UUID) (*model.Exercise, error) {
	exercises, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		if e.ExerciseID == exerciseID {
			return e, nil
		}
	}
	return nil, model.ErrNotFound
}

// matches reports whether e passes the filter. Keyword search is a
// case-insensitive substring match on name and muscle group.
func matchesExerciseFilter(e *model.Exercise, filter model.ExerciseFilter) bool {
	if filter.Category != "" && e.Category != filter.Category {
		return false
	}
	if filter.MuscleGroup != "" && !strings.EqualFold(e.MuscleGroup, filter.MuscleGroup) {
		return false
	}
	if filter.Keyword != "" {
		kw := strings.ToLower(filter.Keyword)
		if !strings.Contains(strings.ToLower(e.Name), kw) &&
			!strings.Contains(strings.ToLower(e.MuscleGroup), kw) {
			return false
		}
	}
	return true
}

func (r *sheetExerciseRepository) FindForUser(ctx context.Context, userID uuid.UUID, filter model.ExerciseFilter) ([]*model.Exercise, error) {
	exercises, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if e.UserID != uuid.Nil && e.UserID != userID {
			continue
		}
		if !matchesExerciseFilter(e, filter) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *sheetExerciseRepository) Update(ctx context.Context, exercise *model.Exercise) error {
	exercises, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, e := range exercises {
		if e.ExerciseID == exercise.ExerciseID {
			exercises[i] = exercise
			found = true
			break
		}
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, exercises)
}

func (r *sheetExerciseRepository) Delete(ctx context.Context, exerciseID uuid.UUID) error {
	exercises, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := exercises[:0]
	found := false
	for _, e := range exercises {
		if e.ExerciseID == exerciseID {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, out)
}

func (r *sheetExerciseRepository) NameExists(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	exercises, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range exercises {
		if e.UserID != uuid.Nil && e.UserID != userID {
			continue
		}
		if excludeID != nil && e.ExerciseID == *excludeID {
			continue
		}
		if strings.EqualFold(e.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
