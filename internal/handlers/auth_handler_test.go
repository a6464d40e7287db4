// internal/handlers/auth_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia199712/Fitness-Web-sub000/internal/config"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"
)

func newAuthHandlerForTest() *AuthHandler {
	store := sheets.NewMemoryStore()
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpiryHours = 1
	svc := service.NewAuthService(
		repository.NewSheetUserRepository(store),
		repository.NewSheetSettingsRepository(store),
		cfg,
	)
	return NewAuthHandler(svc, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := newAuthHandlerForTest()

	t.Run("creates the account", func(t *testing.T) {
		rec := postJSON(t, h.Register, "/api/v1/auth/register", map[string]string{
			"name":     "Alex",
			"email":    "alex@example.com",
			"password": "a-long-password",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var user model.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Alex", user.Name)
		assert.Equal(t, "alex@example.com", user.Email)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		rec := postJSON(t, h.Register, "/api/v1/auth/register", map[string]string{
			"name":     "Alex Again",
			"email":    "alex@example.com",
			"password": "a-long-password",
		})
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "DUPLICATE_EMAIL", resp.Error.Code)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		rec := postJSON(t, h.Register, "/api/v1/auth/register", map[string]string{
			"name":     "Sam",
			"email":    "sam@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandlerForTest()

	rec := postJSON(t, h.Register, "/api/v1/auth/register", map[string]string{
		"name":     "Alex",
		"email":    "alex@example.com",
		"password": "a-long-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("returns a token", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{
			"email":    "alex@example.com",
			"password": "a-long-password",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "alex@example.com", resp.User.Email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		rec := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{
			"email":    "alex@example.com",
			"password": "not-the-password",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)

		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	})
}

func TestDashboardHandler_RequiresAuthentication(t *testing.T) {
	h := NewDashboardHandler(nil, &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil)
	rec := httptest.NewRecorder()
	h.GetOverview(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}
