// internal/repository/achievement_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// AchievementRepository manages the achievements sheet. There is one row
// per (user, type, target_value) milestone tier; the dashboard engine
// upserts through ListByUser + Append/Update.
type AchievementRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error)
	Append(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, achievement *model.Achievement) error
}

type sheetAchievementRepository struct {
	store sheets.Store
}

func NewSheetAchievementRepository(store sheets.Store) AchievementRepository {
	return &sheetAchievementRepository{store: store}
}

func achievementToRow(a *model.Achievement) []string {
	return []string{
		fmtUUID(a.AchievementID),
		fmtUUID(a.UserID),
		a.Name,
		string(a.Type),
		fmtFloat(a.TargetValue),
		fmtFloat(a.CurrentValue),
		string(a.Status),
		a.Icon,
		fmtInt(a.RewardPoints),
		fmtOptTime(a.UnlockedAt),
	}
}

func parseAchievementRow(row []string, idx int) (*model.Achievement, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetAchievements]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "achievement_id", err)
	}
	userID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "user_id", err)
	}
	targetValue, err := parseFloatCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "target_value", err)
	}
	currentValue, err := parseFloatCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "current_value", err)
	}
	rewardPoints, err := parseIntCell(row[8])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "reward_points", err)
	}
	unlockedAt, err := parseOptTimeCell(row[9])
	if err != nil {
		return nil, rowErr(sheets.SheetAchievements, idx, "unlocked_at", err)
	}

	return &model.Achievement{
		AchievementID: id,
		UserID:        userID,
		Name:          row[2],
		Type:          model.AchievementType(row[3]),
		TargetValue:   targetValue,
		CurrentValue:  currentValue,
		Status:        model.AchievementStatus(row[6]),
		Icon:          row[7],
		RewardPoints:  rewardPoints,
		UnlockedAt:    unlockedAt,
	}, nil
}

func (r *sheetAchievementRepository) readAll(ctx context.Context) ([]*model.Achievement, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetAchievements)
	if err != nil {
		return nil, fmt.Errorf("sheetAchievementRepository.readAll: %w", err)
	}
	achievements := make([]*model.Achievement, 0, len(rows))
	for i, row := range rows {
		a, err := parseAchievementRow(row, i)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}

func (r *sheetAchievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Achievement, error) {
	achievements, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *sheetAchievementRepository) Append(ctx context.Context, achievement *model.Achievement) error {
	if err := r.store.AppendRows(ctx, sheets.SheetAchievements, [][]string{achievementToRow(achievement)}); err != nil {
		return fmt.Errorf("sheetAchievementRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetAchievementRepository) Update(ctx context.Context, achievement *model.Achievement) error {
	achievements, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	rows := make([][]string, 0, len(achievements))
	for _, a := range achievements {
		if a.AchievementID == achievement.AchievementID {
			rows = append(rows, achievementToRow(achievement))
			found = true
			continue
		}
		rows = append(rows, achievementToRow(a))
	}
	if !found {
		return model.ErrNotFound
	}
	if err := r.store.WriteRange(ctx, sheets.SheetAchievements, rows); err != nil {
		return fmt.Errorf("sheetAchievementRepository.Update: %w", err)
	}
	return nil
}
