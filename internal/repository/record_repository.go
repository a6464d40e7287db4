// internal/repository/record_repository.go
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// PersonalRecordRepository manages the personal_records sheet: one
// best-known-value row per (user, exercise).
type PersonalRecordRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.PersonalRecord, error)
	FindByExercise(ctx context.Context, userID, exerciseID uuid.UUID) (*model.PersonalRecord, error)
	Append(ctx context.Context, record *model.PersonalRecord) error
	Update(ctx context.Context, record *model.PersonalRecord) error
}

type sheetPersonalRecordRepository struct {
	store sheets.Store
}

func NewSheetPersonalRecordRepository(store sheets.Store) PersonalRecordRepository {
	return &sheetPersonalRecordRepository{store: store}
}

func recordToRow(r *model.PersonalRecord) []string {
	return []string{
		fmtUUID(r.RecordID),
		fmtUUID(r.UserID),
		fmtUUID(r.ExerciseID),
		fmtFloat(r.MaxWeight),
		fmtInt(r.MaxReps),
		fmtFloat(r.MaxVolume),
		fmtTime(r.AchievedAt),
		fmtUUID(r.WorkoutID),
		fmtOptFloat(r.PreviousRecord),
	}
}

func parseRecordRow(row []string, idx int) (*model.PersonalRecord, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetPersonalRecords]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "pr_id", err)
	}
	userID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "user_id", err)
	}
	exerciseID, err := parseUUIDCell(row[2])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "exercise_id", err)
	}
	maxWeight, err := parseFloatCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "max_weight", err)
	}
	maxReps, err := parseIntCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "max_reps", err)
	}
	maxVolume, err := parseFloatCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "max_volume", err)
	}
	achievedAt, err := parseTimeCell(row[6])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "achieved_at", err)
	}
	workoutID, err := parseUUIDCell(row[7])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "workout_id", err)
	}
	previousRecord, err := parseOptFloatCell(row[8])
	if err != nil {
		return nil, rowErr(sheets.SheetPersonalRecords, idx, "previous_record", err)
	}

	return &model.PersonalRecord{
		RecordID:       id,
		UserID:         userID,
		ExerciseID:     exerciseID,
		MaxWeight:      maxWeight,
		MaxReps:        maxReps,
		MaxVolume:      maxVolume,
		AchievedAt:     achievedAt,
		WorkoutID:      workoutID,
		PreviousRecord: previousRecord,
	}, nil
}

func (r *sheetPersonalRecordRepository) readAll(ctx context.Context) ([]*model.PersonalRecord, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetPersonalRecords)
	if err != nil {
		return nil, fmt.Errorf("sheetPersonalRecordRepository.readAll: %w", err)
	}
	records := make([]*model.PersonalRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRecordRow(row, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *sheetPersonalRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.PersonalRecord, error) {
	records, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.PersonalRecord, 0, len(records))
	for _, rec := range records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AchievedAt.After(out[j].AchievedAt) })
	return out, nil
}

func (r *sheetPersonalRecordRepository) FindByExercise(ctx context.Context, userID, exerciseID uuid.UUID) (*model.PersonalRecord, error) {
	records, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.UserID == userID && rec.ExerciseID == exerciseID {
			return rec, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetPersonalRecordRepository) Append(ctx context.Context, record *model.PersonalRecord) error {
	if err := r.store.AppendRows(ctx, sheets.SheetPersonalRecords, [][]string{recordToRow(record)}); err != nil {
		return fmt.Errorf("sheetPersonalRecordRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetPersonalRecordRepository) Update(ctx context.Context, record *model.PersonalRecord) error {
	records, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if rec.RecordID == record.RecordID {
			rows = append(rows, recordToRow(record))
			found = true
			continue
		}
		rows = append(rows, recordToRow(rec))
	}
	if !found {
		return model.ErrNotFound
	}
	if err := r.store.WriteRange(ctx, sheets.SheetPersonalRecords, rows); err != nil {
		return fmt.Errorf("sheetPersonalRecordRepository.Update: %w", err)
	}
	return nil
}
