// internal/repository/settings_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// SettingsRepository manages the settings sheet. One row per user.
type SettingsRepository interface {
	Find(ctx context.Context, userID uuid.UUID) (*model.Settings, error)
	Upsert(ctx context.Context, settings *model.Settings) error
}

type sheetSettingsRepository struct {
	store sheets.Store
}

func NewSheetSettingsRepository(store sheets.Store) SettingsRepository {
	return &sheetSettingsRepository{store: store}
}

func settingsToRow(s *model.Settings) []string {
	return []string{
		fmtUUID(s.UserID),
		s.WeightUnit,
		s.Timezone,
		fmtInt(s.DefaultRestTime),
		fmtBool(s.NotificationsEnabled),
		fmtBool(s.PublicProfile),
		fmtTime(s.UpdatedAt),
	}
}

func parseSettingsRow(row []string, idx int) (*model.Settings, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetSettings]))

	userID, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetSettings, idx, "user_id", err)
	}
	restTime, err := parseIntCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetSettings, idx, "default_rest_time", err)
	}
	notifications, err := parseBoolCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetSettings, idx, "notifications_enabled", err)
	}
	publicProfile, err := parseBoolCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetSettings, idx, "public_profile", err)
	}
	updatedAt, err := parseTimeCell(row[6])
	if err != nil {
		return nil, rowErr(sheets.SheetSettings, idx, "updated_at", err)
	}

	return &model.Settings{
		UserID:               userID,
		WeightUnit:           row[1],
		Timezone:             row[2],
		DefaultRestTime:      restTime,
		NotificationsEnabled: notifications,
		PublicProfile:        publicProfile,
		UpdatedAt:            updatedAt,
	}, nil
}

func (r *sheetSettingsRepository) readAll(ctx context.Context) ([]*model.Settings, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetSettings)
	if err != nil {
		return nil, fmt.Errorf("sheetSettingsRepository.readAll: %w", err)
	}
	all := make([]*model.Settings, 0, len(rows))
	for i, row := range rows {
		s, err := parseSettingsRow(row, i)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

func (r *sheetSettingsRepository) Find(ctx context.Context, userID uuid.UUID) (*model.Settings, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetSettingsRepository) Upsert(ctx context.Context, settings *model.Settings) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	rows := make([][]string, 0, len(all)+1)
	for _, s := range all {
		if s.UserID == settings.UserID {
			rows = append(rows, settingsToRow(settings))
			found = true
			continue
		}
		rows = append(rows, settingsToRow(s))
	}
	if !found {
		if err := r.store.AppendRows(ctx, sheets.SheetSettings, [][]string{settingsToRow(settings)}); err != nil {
			return fmt.Errorf("sheetSettingsRepository.Upsert: %w", err)
		}
		return nil
	}
	if err := r.store.WriteRange(ctx, sheets.SheetSettings, rows); err != nil {
		return fmt.Errorf("sheetSettingsRepository.Upsert: %w", err)
	}
	return nil
}
