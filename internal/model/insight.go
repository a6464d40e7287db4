// internal/model/insight.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InsightType string

const (
	InsightBestTime  InsightType = "best_workout_time"
	InsightFrequency InsightType = "frequency_analysis"
	InsightBalance   InsightType = "balance_analysis"
)

type InsightPriority string

const (
	PriorityLow    InsightPriority = "low"
	PriorityMedium InsightPriority = "medium"
	PriorityHigh   InsightPriority = "high"
)

// Insight is one natural-language observation derived from workout history.
// Insights are regenerated fully on each call and filtered post-hoc.
type Insight struct {
	InsightID   uuid.UUID       `json:"insight_id"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Data        map[string]any  `json:"data,omitempty"`
	Priority    InsightPriority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InsightFilter narrows an insight listing. Zero values match everything;
// Limit 0 means no cap.
type InsightFilter struct {
	Type     InsightType
	Priority InsightPriority
	Limit    int
}
