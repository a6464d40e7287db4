// internal/service/settings_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository"
)

type SettingsService interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*model.Settings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *model.UpdateSettingsRequest) (*model.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings falls back to the defaults when the user has never saved
// any, so the endpoint always returns a full settings object.
func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*model.Settings, error) {
	settings, err := s.settingsRepo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.DefaultSettings(userID), nil
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load settings.", "", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *model.UpdateSettingsRequest) (*model.Settings, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.WeightUnit != nil {
		settings.WeightUnit = *req.WeightUnit
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, model.NewAppError("INVALID_INPUT", "Unknown timezone.", "timezone", model.ErrInvalidInput)
		}
		settings.Timezone = *req.Timezone
	}
	if req.DefaultRestTime != nil {
		settings.DefaultRestTime = *req.DefaultRestTime
	}
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.PublicProfile != nil {
		settings.PublicProfile = *req.PublicProfile
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		logger.Error("Failed to save settings", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save settings.", "", err)
	}
	return settings, nil
}
