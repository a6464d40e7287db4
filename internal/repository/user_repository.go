// internal/repository/user_repository.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

// UserRepository provides CRUD over the users sheet. All lookups are full
// table scans; the sheet has no indexes.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type sheetUserRepository struct {
	store sheets.Store
}

func NewSheetUserRepository(store sheets.Store) UserRepository {
	return &sheetUserRepository{store: store}
}

func userToRow(u *model.User) []string {
	return []string{
		fmtUUID(u.UserID),
		u.Name,
		u.Email,
		u.PasswordHash,
		fmtTime(u.CreatedAt),
		fmtTime(u.UpdatedAt),
	}
}

func parseUserRow(row []string, idx int) (*model.User, error) {
	row = pad(row, len(sheets.Headers[sheets.SheetUsers]))

	id, err := parseUUIDCell(row[0])
	if err != nil {
		return nil, rowErr(sheets.SheetUsers, idx, "user_id", err)
	}
	createdAt, err := parseTimeCell(row[4])
	if err != nil {
		return nil, rowErr(sheets.SheetUsers, idx, "created_at", err)
	}
	updatedAt, err := parseTimeCell(row[5])
	if err != nil {
		return nil, rowErr(sheets.SheetUsers, idx, "updated_at", err)
	}

	return &model.User{
		UserID:       id,
		Name:         row[1],
		Email:        row[2],
		PasswordHash: row[3],
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (r *sheetUserRepository) readAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.store.ReadRange(ctx, sheets.SheetUsers)
	if err != nil {
		return nil, fmt.Errorf("sheetUserRepository.readAll: %w", err)
	}
	users := make([]*model.User, 0, len(rows))
	for i, row := range rows {
		u, err := parseUserRow(row, i)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *sheetUserRepository) Create(ctx context.Context, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	if err := r.store.AppendRows(ctx, sheets.SheetUsers, [][]string{userToRow(user)}); err != nil {
		logger.Error("Error appending user row",
			"error", err,
			"user_id", user.UserID.String(),
		)
		return fmt.Errorf("sheetUserRepository.Create: %w", err)
	}
	return nil
}

func (r *sheetUserRepository) FindByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *sheetUserRepository) Update(ctx context.Context, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	found := false
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		if u.UserID == user.UserID {
			rows = append(rows, userToRow(user))
			found = true
			continue
		}
		rows = append(rows, userToRow(u))
	}
	if !found {
		return model.ErrNotFound
	}

	if err := r.store.WriteRange(ctx, sheets.SheetUsers, rows); err != nil {
		logger.Error("Error writing users sheet",
			"error", err,
			"user_id", user.UserID.String(),
		)
		return fmt.Errorf("sheetUserRepository.Update: %w", err)
	}
	return nil
}
