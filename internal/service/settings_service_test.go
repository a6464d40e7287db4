// internal/service/settings_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository/mocks"
)

func Test_settingsService_GetSettings(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("falls back to defaults", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsRepo.On("Find", ctx, userID).Return(nil, model.ErrNotFound).Once()
		svc := NewSettingsService(settingsRepo)

		settings, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "kg", settings.WeightUnit)
		assert.Equal(t, 90, settings.DefaultRestTime)
		assert.True(t, settings.NotificationsEnabled)
	})

	t.Run("returns stored settings", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		stored := &model.Settings{UserID: userID, WeightUnit: "lb", Timezone: "America/New_York"}
		settingsRepo.On("Find", ctx, userID).Return(stored, nil).Once()
		svc := NewSettingsService(settingsRepo)

		settings, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "lb", settings.WeightUnit)
	})
}

func Test_settingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsRepo.On("Find", ctx, userID).Return(model.DefaultSettings(userID), nil).Once()
		settingsRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Settings")).Return(nil).Once()
		svc := NewSettingsService(settingsRepo)

		unit := "lb"
		rest := 120
		settings, err := svc.UpdateSettings(ctx, userID, &model.UpdateSettingsRequest{
			WeightUnit:      &unit,
			DefaultRestTime: &rest,
		})
		require.NoError(t, err)
		assert.Equal(t, "lb", settings.WeightUnit)
		assert.Equal(t, 120, settings.DefaultRestTime)
		assert.Equal(t, "Local", settings.Timezone)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown timezone", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsRepo.On("Find", ctx, userID).Return(model.DefaultSettings(userID), nil).Once()
		svc := NewSettingsService(settingsRepo)

		tz := "Mars/Olympus_Mons"
		_, err := svc.UpdateSettings(ctx, userID, &model.UpdateSettingsRequest{Timezone: &tz})
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_INPUT", appErr.Code)
		settingsRepo.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
	})
}
