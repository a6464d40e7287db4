// internal/repository/workout_repository.go
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// WorkoutRepository provides CRUD over the workouts sheet. Listing is a
// full scan over the user's history; callers should treat it as O(n).
type WorkoutRepository interface {
	Create(ctx context.Context, workout *model.Workout) error
	FindByID(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter model.WorkoutFilter) ([]*model.Workout, int, error)
	Update(ctx context.Context, workout *model.Workout) error
	Delete(ctx context.Context, userID, workoutID uuid.UUID) error
}

type sheetWorkoutRepository struct {
	store sheets.Store
}

func NewSheetWorkoutRepository(store sheets.Store) WorkoutRepository {
	return &sheetWorkoutRepository{store: store}
}

func workoutToRow(w *model.Workout) []string {
	return []string{
		fmtUUID(w.WorkoutID),
		fmtUUID(w.UserID),
		w.Title,
		fmtDate(w.Date),
		fmtTime(w.StartTime),
		fmtOptTime(w.EndTime),
		fmtInt(w.Duration),
		string(w.Status),
		fmtFloat(w.TotalVolume),
		fmtInt(w.TotalSets),
		fmtInt(w.TotalReps),
		w.Notes,
		fmtTime(w.CreatedAt),
		fmtTime(w.UpdatedAt),
	}
}

func parseWorkoutRow(row []string, idx int) (*model.Workout, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetWorkouts]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "workout_id", err)
	}
	userID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "user_id", err)
	}
	date, err := parseDateCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "date", err)
	}
	startTime, err := parseTimeCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "start_time", err)
	}
	endTime, err := parseOptTimeCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "end_time", err)
	}
	duration, err := parseIntCell(row[6])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "duration", err)
	}
	status := model.WorkoutStatus(row[7])
	switch status {
	case model.WorkoutActive, model.WorkoutPaused, model.WorkoutCompleted, model.WorkoutCancelled:
	default:
		return nil, rowErr(sheets.SheetWorkouts, idx, "status", fmt.Errorf("unknown status %q", row[7]))
	}
	totalVolume, err := parseFloatCell(row[8])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "total_volume", err)
	}
	totalSets, err := parseIntCell(row[9])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "total_sets", err)
	}
	totalReps, err := parseIntCell(row[10])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "total_reps", err)
	}
	createdAt, err := parseTimeCell(row[12])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "created_at", err)
	}
	updatedAt, err := parseTimeCell(row[13])
	if err != nil {
		return nil, rowErr(sheets.SheetWorkouts, idx, "updated_at", err)
	}

	return &model.Workout{
		WorkoutID:   id,
		UserID:      userID,
		Title:       row[2],
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Duration:    duration,
		Status:      status,
		TotalVolume: totalVolume,
		TotalSets:   totalSets,
		TotalReps:   totalReps,
		Notes:       row[11],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (r *sheetWorkoutRepository) readAll(ctx context.Context) ([]*model.Workout, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetWorkouts)
	if err != nil {
		return nil, fmt.Errorf("sheetWorkoutRepository.readAll: %w", err)
	}
	workouts := make([]*model.Workout, 0, len(rows))
	for i, row := range rows {
		w, err := parseWorkoutRow(row, i)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func (r *sheetWorkoutRepository) writeAll(ctx context.Context, workouts []*model.Workout) error {
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, workoutToRow(w))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetWorkouts, rows); err != nil {
		return fmt.Errorf("sheetWorkoutRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetWorkoutRepository) Create(ctx context.Context, workout *model.Workout) error {
	logger := middleware.GetLogger(ctx)
	if err := r.store.AppendRows(ctx, sheets.SheetWorkouts, [][]string{workoutToRow(workout)}); err != nil {
		logger.Error("Error appending workout row",
			"error", err,
			"workout_id", workout.WorkoutID.String(),
		)
		return fmt.Errorf("sheetWorkoutRepository.Create: %w", err)
	}
	return nil
}

func (r *sheetWorkoutRepository) FindByID(ctx context.Context, userID, workoutID uuid.UUID) (*model.Workout, error) {
	workouts, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range workouts {
		if w.UserID == userID && w.WorkoutID == workoutID {
			return w, nil
		}
	}
	return nil, model.ErrNotFound
}

func matchesWorkoutFilter(w *model.Workout, filter model.WorkoutFilter) bool {
	if filter.Status != "" && w.Status != filter.Status {
		return false
	}
	if filter.StartDate != nil && w.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && w.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

// FindByUser returns the filtered workouts sorted by date descending plus
// the pre-pagination total.
func (r *sheetWorkoutRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter model.WorkoutFilter) ([]*model.Workout, int, error) {
	workouts, err := r.readAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*model.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.UserID != userID {
			continue
		}
		if !matchesWorkoutFilter(w, filter) {
			continue
		}
		matched = append(matched, w)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].StartTime.After(matched[j].StartTime)
	})

	total := len(matched)
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*model.Workout{}, total, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *sheetWorkoutRepository) Update(ctx context.Context, workout *model.Workout) error {
	workouts, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, w := range workouts {
		if w.WorkoutID == workout.WorkoutID && w.UserID == workout.UserID {
			workouts[i] = workout
			found = true
			break
		}
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, workouts)
}

func (r *sheetWorkoutRepository) Delete(ctx context.Context, userID, workoutID uuid.UUID) error {
	workouts, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := workouts[:0]
	found := false
	for _, w := range workouts {
		if w.UserID == userID && w.WorkoutID == workoutID {
			found = true
			continue
		}
		out = append(out, w)
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, out)
}
