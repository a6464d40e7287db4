// internal/repository/workout_item_repository.go
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// WorkoutExerciseRepository manages the workout_exercises sheet: the
// ordered links from a workout to its exercises.
type WorkoutExerciseRepository interface {
	ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*model.WorkoutExercise, error)
	FindByID(ctx context.Context, workoutExerciseID uuid.UUID) (*model.WorkoutExercise, error)
	Append(ctx context.Context, we *model.WorkoutExercise) error
	Update(ctx context.Context, we *model.WorkoutExercise) error
	// ReplaceForWorkout rewrites every link of one workout in a single
	// range write; used by the renumber pass after a removal.
	ReplaceForWorkout(ctx context.Context, workoutID uuid.UUID, items []*model.WorkoutExercise) error
	DeleteByWorkout(ctx context.Context, workoutID uuid.UUID) error
	ExistsByExercise(ctx context.Context, exerciseID uuid.UUID) (bool, error)
}

// SetRepository manages the sets sheet.
type SetRepository interface {
	ListByWorkoutExercises(ctx context.Context, workoutExerciseIDs []uuid.UUID) ([]*model.Set, error)
	FindByID(ctx context.Context, setID uuid.UUID) (*model.Set, error)
	Append(ctx context.Context, set *model.Set) error
	Update(ctx context.Context, set *model.Set) error
	Delete(ctx context.Context, setID uuid.UUID) error
	DeleteByWorkoutExercises(ctx context.Context, workoutExerciseIDs []uuid.UUID) error
	ReplaceForExercise(ctx context.Context, workoutExerciseID uuid.UUID, sets []*model.Set) error
}

type sheetWorkoutExerciseRepository struct {
	store sheets.Store
}

func NewSheetWorkoutExerciseRepository(store sheets.Store) WorkoutExerciseRepository {
	return &sheetWorkoutExerciseRepository{store: store}
}

func workoutExerciseToRow(we *model.WorkoutExercise) []string {
	return []string{
		fmtUUID(we.WorkoutExerciseID),
		fmtUUID(we.WorkoutID),
		fmtUUID(we.ExerciseID),
		fmtInt(we.Order),
		we.Notes,
		fmtTime(we.CreatedAt),
	}
}

func parseWorkoutExerciseRow(row []string, idx int) (*model.WorkoutExercise, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetWorkoutExercises]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkoutExercises, idx, "workout_exercise_id", err)
	}
	workoutID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkoutExercises, idx, "workout_id", err)
	}
	exerciseID, err := parseUUIDCell(row[2])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkoutExercises, idx, "exercise_id", err)
	}
	order, err := parseIntCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkoutExercises, idx, "order", err)
	}
	createdAt, err := parseTimeCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkoutExercises, idx, "created_at", err)
	}

	return &model.WorkoutExercise{
		WorkoutExerciseID: id,
		WorkoutID:         workoutID,
		ExerciseID:        exerciseID,
		Order:             order,
		Notes:             row[4],
		CreatedAt:         createdAt,
	}, nil
}

func (r *sheetWorkoutExerciseRepository) readAll(ctx context.Context) ([]*model.WorkoutExercise, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetWorkoutExercises)
	if err != nil {
		return nil, fmt.Errorf("sheetWorkoutExerciseRepository.readAll: %w", err)
	}
	items := make([]*model.WorkoutExercise, 0, len(rows))
	for i, row := range rows {
		we, err := parseWorkoutExerciseRow(row, i)
		if err != nil {
			return nil, err
		}
		items = append(items, we)
	}
	return items, nil
}

func (r *sheetWorkoutExerciseRepository) writeAll(ctx context.Context, items []*model.WorkoutExercise) error {
	rows := make([][]string, 0, len(items))
	for _, we := range items {
		rows = append(rows, workoutExerciseToRow(we))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetWorkoutExercises, rows); err != nil {
		return fmt.Errorf("sheetWorkoutExerciseRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetWorkoutExerciseRepository) ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]*model.WorkoutExercise, error) {
	items, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.WorkoutExercise, 0, len(items))
	for _, we := range items {
		if we.WorkoutID == workoutID {
			out = append(out, we)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *sheetWorkoutExerciseRepository) FindByID(ctx context.Context, workoutExerciseID uuid.UUID) (*model.WorkoutExercise, error) {
	items, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, we := range items {
		if we.WorkoutExerciseID == workoutExerciseID {
			return we, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetWorkoutExerciseRepository) Append(ctx context.Context, we *model.WorkoutExercise) error {
	if err := r.store.AppendRows(ctx, sheets.SheetWorkoutExercises, [][]string{workoutExerciseToRow(we)}); err != nil {
		return fmt.Errorf("sheetWorkoutExerciseRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetWorkoutExerciseRepository) Update(ctx context.Context, we *model.WorkoutExercise) error {
	items, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, item := range items {
		if item.WorkoutExerciseID == we.WorkoutExerciseID {
			items[i] = we
			found = true
			break
		}
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, items)
}

func (r *sheetWorkoutExerciseRepository) ReplaceForWorkout(ctx context.Context, workoutID uuid.UUID, replacement []*model.WorkoutExercise) error {
	items, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := make([]*model.WorkoutExercise, 0, len(items)+len(replacement))
	for _, we := range items {
		if we.WorkoutID != workoutID {
			out = append(out, we)
		}
	}
	out = append(out, replacement...)
	return r.writeAll(ctx, out)
}

func (r *sheetWorkoutExerciseRepository) DeleteByWorkout(ctx context.Context, workoutID uuid.UUID) error {
	return r.ReplaceForWorkout(ctx, workoutID, nil)
}

func (r *sheetWorkoutExerciseRepository) ExistsByExercise(ctx context.Context, exerciseID uuid.UUID) (bool, error) {
	items, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}
	for _, we := range items {
		if we.ExerciseID == exerciseID {
			return true, nil
		}
	}
	return false, nil
}

type sheetSetRepository struct {
	store sheets.Store
}

func NewSheetSetRepository(store sheets.Store) SetRepository {
	return &sheetSetRepository{store: store}
}

func setToRow(s *model.Set) []string {
	return []string{
		fmtUUID(s.SetID),
		fmtUUID(s.WorkoutExerciseID),
		fmtInt(s.SetNumber),
		fmtFloat(s.Weight),
		fmtInt(s.Reps),
		fmtBool(s.Completed),
		fmtInt(s.RestTime),
		s.Notes,
		fmtOptTime(s.CompletedAt),
		fmtTime(s.CreatedAt),
	}
}

func parseSetRow(row []string, idx int) (*model.Set, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetSets]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "set_id", err)
	}
	weID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "workout_exercise_id", err)
	}
	setNumber, err := parseIntCell(row[2])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "set_number", err)
	}
	weight, err := parseFloatCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "weight", err)
	}
	reps, err := parseIntCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "reps", err)
	}
	completed, err := parseBoolCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "completed", err)
	}
	restTime, err := parseIntCell(row[6])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "rest_time", err)
	}
	completedAt, err := parseOptTimeCell(row[8])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "completed_at", err)
	}
	createdAt, err := parseTimeCell(row[9])
	if err != nil {
		return nil, rowErr(sheets.SheetSets, idx, "created_at", err)
	}

	return &model.Set{
		SetID:             id,
		WorkoutExerciseID: weID,
		SetNumber:         setNumber,
		Weight:            weight,
		Reps:              reps,
		Completed:         completed,
		RestTime:          restTime,
		Notes:             row[7],
		CompletedAt:       completedAt,
		CreatedAt:         createdAt,
	}, nil
}

func (r *sheetSetRepository) readAll(ctx context.Context) ([]*model.Set, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetSets)
	if err != nil {
		return nil, fmt.Errorf("sheetSetRepository.readAll: %w", err)
	}
	sets := make([]*model.Set, 0, len(rows))
	for i, row := range rows {
		s, err := parseSetRow(row, i)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func (r *sheetSetRepository) writeAll(ctx context.Context, sets []*model.Set) error {
	rows := make([][]string, 0, len(sets))
	for _, s := range sets {
		rows = append(rows, setToRow(s))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetSets, rows); err != nil {
		return fmt.Errorf("sheetSetRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetSetRepository) ListByWorkoutExercises(ctx context.Context, workoutExerciseIDs []uuid.UUID) ([]*model.Set, error) {
	sets, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]bool, len(workoutExerciseIDs))
	for _, id := range workoutExerciseIDs {
		wanted[id] = true
	}
	out := make([]*model.Set, 0, len(sets))
	for _, s := range sets {
		if wanted[s.WorkoutExerciseID] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SetNumber < out[j].SetNumber })
	return out, nil
}

func (r *sheetSetRepository) FindByID(ctx context.Context, setID uuid.UUID) (*model.Set, error) {
	sets, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sets {
		if s.SetID == setID {
			return s, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetSetRepository) Append(ctx context.Context, set *model.Set) error {
	if err := r.store.AppendRows(ctx, sheets.SheetSets, [][]string{setToRow(set)}); err != nil {
		return fmt.Errorf("sheetSetRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetSetRepository) Update(ctx context.Context, set *model.Set) error {
	sets, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, s := range sets {
		if s.SetID == set.SetID {
			sets[i] = set
			found = true
			break
		}
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, sets)
}

func (r *sheetSetRepository) Delete(ctx context.Context, setID uuid.UUID) error {
	sets, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := sets[:0]
	found := false
	for _, s := range sets {
		if s.SetID == setID {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, out)
}

func (r *sheetSetRepository) DeleteByWorkoutExercises(ctx context.Context, workoutExerciseIDs []uuid.UUID) error {
	sets, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	doomed := make(map[uuid.UUID]bool, len(workoutExerciseIDs))
	for _, id := range workoutExerciseIDs {
		doomed[id] = true
	}
	out := sets[:0]
	for _, s := range sets {
		if doomed[s.WorkoutExerciseID] {
			continue
		}
		out = append(out, s)
	}
	return r.writeAll(ctx, out)
}

func (r *sheetSetRepository) ReplaceForExercise(ctx context.Context, workoutExerciseID uuid.UUID, replacement []*model.Set) error {
	sets, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := make([]*model.Set, 0, len(sets)+len(replacement))
	for _, s := range sets {
		if s.WorkoutExerciseID != workoutExerciseID {
			out = append(out, s)
		}
	}
	out = append(out, replacement...)
	return r.writeAll(ctx, out)
}
