// internal/model/settings.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Settings are per-user preferences. One row per user.
type Settings struct {
	UserID               uuid.UUID `json:"-"`
	WeightUnit           string    `json:"weight_unit"` // kg or lb
	Timezone             string    `json:"timezone"`
	DefaultRestTime      int       `json:"default_rest_time"` // seconds
	NotificationsEnabled bool      `json:"notifications_enabled"`
	PublicProfile        bool      `json:"public_profile"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings a user starts with.
func DefaultSettings(userID uuid.UUID) *Settings {
	return &Settings{
		UserID:               userID,
		WeightUnit:           "kg",
		Timezone:             "Local",
		DefaultRestTime:      90,
		NotificationsEnabled: true,
		PublicProfile:        false,
	}
}

// UpdateSettingsRequest is the body of PATCH /settings.
type UpdateSettingsRequest struct {
	WeightUnit           *string `json:"weight_unit,omitempty" validate:"omitempty,oneof=kg lb"`
	Timezone             *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	DefaultRestTime      *int    `json:"default_rest_time,omitempty" validate:"omitempty,min=0,max=3600"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	PublicProfile        *bool   `json:"public_profile,omitempty"`
}
