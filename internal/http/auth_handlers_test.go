package httpapi

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-backend-go/internal/config"
	"nexus-backend-go/internal/models"
)

func seedAdmin(t *testing.T, env *testEnv, email, password string) *models.Admin {
	t.Helper()
	hash, err := env.server.Tokens.HashPassword(password)
	require.NoError(t, err)
	admin := &models.Admin{Email: email, Name: "Admin User", PasswordHash: hash}
	require.NoError(t, env.server.Store.CreateAdmin(context.Background(), admin))
	return admin
}

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	admin := seedAdmin(t, env, "admin@nexus.com", "admin123")

	rec := env.do(t, http.MethodPost, "/api/auth?action=login", map[string]any{
		"email":    "admin@nexus.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[LoginResponse](t, rec)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, admin.ID, resp.Admin.ID)
	assert.Equal(t, "admin@nexus.com", resp.Admin.Email)

	_, claims, err := env.server.Tokens.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims["adminId"])
	assert.Equal(t, "admin@nexus.com", claims["email"])
}

func TestLoginFailuresLookAlike(t *testing.T) {
	env := newTestEnv(t)
	seedAdmin(t, env, "admin@nexus.com", "admin123")

	wrongPassword := env.do(t, http.MethodPost, "/api/auth?action=login", map[string]any{
		"email": "admin@nexus.com", "password": "nope",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth?action=login", map[string]any{
		"email": "ghost@nexus.com", "password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "Invalid credentials", errorOf(t, wrongPassword))

	rec := env.do(t, http.MethodPost, "/api/auth?action=login", map[string]any{"email": "admin@nexus.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", errorOf(t, rec))
}

func TestAddAdminRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]any{"name": "Jane", "email": "jane@nexus.com", "password": "s3cret"}

	rec := env.do(t, http.MethodPost, "/api/auth?action=add-admin", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[AddAdminResponse](t, rec)
	assert.Equal(t, "Admin created successfully", created.Message)
	assert.NotEmpty(t, created.Admin.ID)
	assert.False(t, created.Admin.CreatedAt.IsZero())

	rec = env.do(t, http.MethodPost, "/api/auth?action=add-admin", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Admin with this email already exists", errorOf(t, rec))

	admins, err := env.server.Store.ListAdmins(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	rec = env.do(t, http.MethodPost, "/api/auth?action=add-admin", map[string]any{"email": "x@nexus.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email, and password are required", errorOf(t, rec))
}

func TestGetAdminsOmitsPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	seedAdmin(t, env, "admin@nexus.com", "admin123")

	rec := env.do(t, http.MethodGet, "/api/auth?action=get-admins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
	admins := decode[[]models.Admin](t, rec)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@nexus.com", admins[0].Email)

	rec = env.do(t, http.MethodGet, "/api/auth?action=login", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", errorOf(t, rec))
}

func TestAdminActionsGuardedWhenAuthRequired(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.AuthRequired = true })
	admin := seedAdmin(t, env, "admin@nexus.com", "admin123")

	rec := env.do(t, http.MethodGet, "/api/auth?action=get-admins", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth?action=login", map[string]any{
		"email": "admin@nexus.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[LoginResponse](t, rec).Token

	rec = env.do(t, http.MethodGet, "/api/auth?action=get-admins", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	admins := decode[[]models.Admin](t, rec)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)
}
