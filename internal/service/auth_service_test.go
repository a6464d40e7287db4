// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chia199712/Fitness-Web-sub000/internal/config"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository/mocks"
)

func newAuthServiceForTest() (AuthService, *mocks.UserRepository, *mocks.SettingsRepository) {
	userRepo := new(mocks.UserRepository)
	settingsRepo := new(mocks.SettingsRepository)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpiryHours = 24
	return NewAuthService(userRepo, settingsRepo, cfg), userRepo, settingsRepo
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()
	req := &model.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "correct horse battery",
	}

	t.Run("success", func(t *testing.T) {
		svc, userRepo, settingsRepo := newAuthServiceForTest()
		userRepo.On("FindByEmail", ctx, req.Email).Return(nil, model.ErrNotFound).Once()

		var created *model.User
		userRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.User)
			}).Return(nil).Once()
		settingsRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Settings")).Return(nil).Once()

		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.Email, resp.Email)
		assert.Equal(t, req.Name, resp.Name)

		require.NotNil(t, created)
		assert.NotEqual(t, req.Password, created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(req.Password)))
		settingsRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		existing := &model.User{UserID: uuid.New(), Email: req.Email}
		userRepo.On("FindByEmail", ctx, req.Email).Return(existing, nil).Once()

		_, err := svc.Register(ctx, req)
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Code)
		assert.True(t, errors.Is(appErr, model.ErrConflict))
		userRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("settings failure does not fail registration", func(t *testing.T) {
		svc, userRepo, settingsRepo := newAuthServiceForTest()
		userRepo.On("FindByEmail", ctx, req.Email).Return(nil, model.ErrNotFound).Once()
		userRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil).Once()
		settingsRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Settings")).Return(assert.AnError).Once()

		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.Email, resp.Email)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	password := "correct horse battery"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		UserID:       uuid.New(),
		Name:         "Alex",
		Email:        "alex@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success issues a valid token", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.Email, resp.User.Email)

		claims := &model.JWTCustomClaims{}
		parsed, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		assert.Equal(t, user.UserID.String(), claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: "nope"})
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, model.ErrNotFound).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "ghost@example.com", Password: password})
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
	})
}

func Test_authService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		user := &model.User{UserID: uuid.New(), Name: "Alex", Email: "alex@example.com"}
		userRepo.On("FindByID", ctx, user.UserID).Return(user, nil).Once()
		userRepo.On("Update", ctx, user).Return(nil).Once()

		name := "Alexandra"
		resp, err := svc.UpdateProfile(ctx, user.UserID, &model.UpdateProfileRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", resp.Name)
	})

	t.Run("email taken by another account", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		user := &model.User{UserID: uuid.New(), Name: "Alex", Email: "alex@example.com"}
		other := &model.User{UserID: uuid.New(), Email: "taken@example.com"}
		userRepo.On("FindByID", ctx, user.UserID).Return(user, nil).Once()
		userRepo.On("FindByEmail", ctx, other.Email).Return(other, nil).Once()

		email := other.Email
		_, err := svc.UpdateProfile(ctx, user.UserID, &model.UpdateProfileRequest{Email: &email})
		require.Error(t, err)
		appErr, ok := err.(*model.AppError)
		require.True(t, ok)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Code)
		userRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("no-op when nothing changes", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceForTest()
		user := &model.User{UserID: uuid.New(), Name: "Alex", Email: "alex@example.com"}
		userRepo.On("FindByID", ctx, user.UserID).Return(user, nil).Once()

		name := "Alex"
		resp, err := svc.UpdateProfile(ctx, user.UserID, &model.UpdateProfileRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alex", resp.Name)
		userRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})
}
