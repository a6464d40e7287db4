// internal/repository/template_repository.go
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// TemplateRepository provides CRUD over the templates sheet.
type TemplateRepository interface {
	Create(ctx context.Context, template *model.Template) error
	FindByID(ctx context.Context, userID, templateID uuid.UUID) (*model.Template, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Template, error)
	Update(ctx context.Context, template *model.Template) error
	Delete(ctx context.Context, userID, templateID uuid.UUID) error
}

// TemplateExerciseRepository manages the template_exercises sheet.
type TemplateExerciseRepository interface {
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*model.TemplateExercise, error)
	Append(ctx context.Context, te *model.TemplateExercise) error
	ReplaceForTemplate(ctx context.Context, templateID uuid.UUID, items []*model.TemplateExercise) error
	DeleteByTemplate(ctx context.Context, templateID uuid.UUID) error
	ExistsByExercise(ctx context.Context, exerciseID uuid.UUID) (bool, error)
}

type sheetTemplateRepository struct {
	store sheets.Store
}

func NewSheetTemplateRepository(store sheets.Store) TemplateRepository {
	return &sheetTemplateRepository{store: store}
}

func templateToRow(t *model.Template) []string {
	return []string{
		fmtUUID(t.TemplateID),
		fmtUUID(t.UserID),
		t.Name,
		t.Description,
		fmtTime(t.CreatedAt),
		fmtTime(t.UpdatedAt),
	}
}

func parseTemplateRow(row []string, idx int) (*model.Template, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetTemplates]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplates, idx, "template_id", err)
	}
	userID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplates, idx, "user_id", err)
	}
	createdAt, err := parseTimeCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplates, idx, "created_at", err)
	}
	updatedAt, err := parseTimeCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplates, idx, "updated_at", err)
	}

	return &model.Template{
		TemplateID:  id,
		UserID:      userID,
		Name:        row[2],
		Description: row[3],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (r *sheetTemplateRepository) readAll(ctx context.Context) ([]*model.Template, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetTemplates)
	if err != nil {
		return nil, fmt.Errorf("sheetTemplateRepository.readAll: %w", err)
	}
	templates := make([]*model.Template, 0, len(rows))
	for i, row := range rows {
		t, err := parseTemplateRow(row, i)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (r *sheetTemplateRepository) writeAll(ctx context.Context, templates []*model.Template) error {
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, templateToRow(t))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetTemplates, rows); err != nil {
		return fmt.Errorf("sheetTemplateRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetTemplateRepository) Create(ctx context.Context, template *model.Template) error {
	if err := r.store.AppendRows(ctx, sheets.SheetTemplates, [][]string{templateToRow(template)}); err != nil {
		return fmt.Errorf("sheetTemplateRepository.Create: %w", err)
	}
	return nil
}

func (r *sheetTemplateRepository) FindByID(ctx context.Context, userID, templateID uuid.UUID) (*model.Template, error) {
	templates, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.UserID == userID && t.TemplateID == templateID {
			return t, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetTemplateRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Template, error) {
	templates, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Template, 0, len(templates))
	for _, t := range templates {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *sheetTemplateRepository) Update(ctx context.Context, template *model.Template) error {
	templates, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, t := range templates {
		if t.TemplateID == template.TemplateID && t.UserID == template.UserID {
			templates[i] = template
			found = true
			break
		}
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, templates)
}

func (r *sheetTemplateRepository) Delete(ctx context.Context, userID, templateID uuid.UUID) error {
	templates, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := templates[:0]
	found := false
	for _, t := range templates {
		if t.UserID == userID && t.TemplateID == templateID {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return model.ErrNotFound
	}
	return r.writeAll(ctx, out)
}

type sheetTemplateExerciseRepository struct {
	store sheets.Store
}

func NewSheetTemplateExerciseRepository(store sheets.Store) TemplateExerciseRepository {
	return &sheetTemplateExerciseRepository{store: store}
}

func templateExerciseToRow(te *model.TemplateExercise) []string {
	return []string{
		fmtUUID(te.TemplateExerciseID),
		fmtUUID(te.TemplateID),
		fmtUUID(te.ExerciseID),
		fmtInt(te.Order),
		fmtInt(te.DefaultSets),
		fmtInt(te.DefaultReps),
		fmtFloat(te.DefaultWeight),
	}
}

func parseTemplateExerciseRow(row []string, idx int) (*model.TemplateExercise, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetTemplateExercises]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "template_exercise_id", err)
	}
	templateID, err := parseUUIDCell(row[1])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "template_id", err)
	}
	exerciseID, err := parseUUIDCell(row[2])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "exercise_id", err)
	}
	order, err := parseIntCell(row[3])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "order", err)
	}
	defaultSets, err := parseIntCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "default_sets", err)
	}
	defaultReps, err := parseIntCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "default_reps", err)
	}
	defaultWeight, err := parseFloatCell(row[6])
	if err != nil {
		return nil, rowErr(sheets.SheetTemplateExercises, idx, "default_weight", err)
	}

	return &model.TemplateExercise{
		TemplateExerciseID: id,
		TemplateID:         templateID,
		ExerciseID:         exerciseID,
		Order:              order,
		DefaultSets:        defaultSets,
		DefaultReps:        defaultReps,
		DefaultWeight:      defaultWeight,
	}, nil
}

func (r *sheetTemplateExerciseRepository) readAll(ctx context.Context) ([]*model.TemplateExercise, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetTemplateExercises)
	if err != nil {
		return nil, fmt.Errorf("sheetTemplateExerciseRepository.readAll: %w", err)
	}
	items := make([]*model.TemplateExercise, 0, len(rows))
	for i, row := range rows {
		te, err := parseTemplateExerciseRow(row, i)
		if err != nil {
			return nil, err
		}
		items = append(items, te)
	}
	return items, nil
}

func (r *sheetTemplateExerciseRepository) writeAll(ctx context.Context, items []*model.TemplateExercise) error {
	rows := make([][]string, 0, len(items))
	for _, te := range items {
		rows = append(rows, templateExerciseToRow(te))
	}
	if err := r.store.WriteRange(ctx, sheets.SheetTemplateExercises, rows); err != nil {
		return fmt.Errorf("sheetTemplateExerciseRepository.writeAll: %w", err)
	}
	return nil
}

func (r *sheetTemplateExerciseRepository) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*model.TemplateExercise, error) {
	items, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.TemplateExercise, 0, len(items))
	for _, te := range items {
		if te.TemplateID == templateID {
			out = append(out, te)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *sheetTemplateExerciseRepository) Append(ctx context.Context, te *model.TemplateExercise) error {
	if err := r.store.AppendRows(ctx, sheets.SheetTemplateExercises, [][]string{templateExerciseToRow(te)}); err != nil {
		return fmt.Errorf("sheetTemplateExerciseRepository.Append: %w", err)
	}
	return nil
}

func (r *sheetTemplateExerciseRepository) ReplaceForTemplate(ctx context.Context, templateID uuid.UUID, replacement []*model.TemplateExercise) error {
	items, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	out := make([]*model.TemplateExercise, 0, len(items)+len(replacement))
	for _, te := range items {
		if te.TemplateID != templateID {
			out = append(out, te)
		}
	}
	out = append(out, replacement...)
	return r.writeAll(ctx, out)
}

func (r *sheetTemplateExerciseRepository) DeleteByTemplate(ctx context.Context, templateID uuid.UUID) error {
	return r.ReplaceForTemplate(ctx, templateID, nil)
}

func (r *sheetTemplateExerciseRepository) ExistsByExercise(ctx context.Context, exerciseID uuid.UUID) (bool, error) {
	items, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}
	for _, te := range items {
		if te.ExerciseID == exerciseID {
			return true, nil
		}
	}
	return false, nil
}
