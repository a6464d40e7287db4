// internal/sheets/store.go
package sheets

import "context"

// Sheet names, one per entity family. Each sheet is a full table that
// repositories scan and filter in memory; there is no indexing and no
// transactionality across calls.
const (
	SheetUsers             = "users"
	SheetExercises         = "exercises"
	SheetWorkouts          = "workouts"
	SheetWorkoutExercises  = "workout_exercises"
	SheetSets              = "sets"
	SheetTemplates         = "templates"
	SheetTemplateExercises = "template_exercises"
	SheetAchievements      = "achievements"
	SheetPersonalRecords   = "personal_records"
	SheetSettings          = "settings"
)

// Headers maps each sheet to its header row. The header is written when a
// sheet is created and skipped on every read.
var Headers = map[string][]string{
	SheetUsers:             {"user_id", "name", "email", "password_hash", "created_at", "updated_at"},
	SheetExercises:         {"exercise_id", "user_id", "name", "category", "muscle_group", "equipment", "description", "is_custom", "created_at", "updated_at"},
	SheetWorkouts:          {"workout_id", "user_id", "title", "date", "start_time", "end_time", "duration", "status", "total_volume", "total_sets", "total_reps", "notes", "created_at", "updated_at"},
	SheetWorkoutExercises:  {"workout_exercise_id", "workout_id", "exercise_id", "order", "notes", "created_at"},
	SheetSets:              {"set_id", "workout_exercise_id", "set_number", "weight", "reps", "completed", "rest_time", "notes", "completed_at", "created_at"},
	SheetTemplates:         {"template_id", "user_id", "name", "description", "created_at", "updated_at"},
	SheetTemplateExercises: {"template_exercise_id", "template_id", "exercise_id", "order", "default_sets", "default_reps", "default_weight"},
	SheetAchievements:      {"achievement_id", "user_id", "name", "type", "target_value", "current_value", "status", "icon", "reward_points", "unlocked_at"},
	SheetPersonalRecords:   {"pr_id", "user_id", "exercise_id", "max_weight", "max_reps", "max_volume", "achieved_at", "workout_id", "previous_record"},
	SheetSettings:          {"user_id", "weight_unit", "timezone", "default_rest_time", "notifications_enabled", "public_profile", "updated_at"},
}

// Store is the tabular store adapter. Rows exclude the header. Operations
// are individually atomic at best; read-modify-write sequences across
// calls are not, which the repositories accept (last writer wins).
type Store interface {
	ReadRange(ctx context.Context, sheet string) ([][]string, error)
	WriteRange(ctx context.Context, sheet string, rows [][]string) error
	AppendRows(ctx context.Context, sheet string, rows [][]string) error
	ClearRange(ctx context.Context, sheet string) error
}
