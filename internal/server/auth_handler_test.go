package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/laborlink/internal/config"
)

// setupTestAuthHandler creates an AuthHandler with test services.
// The nil DB is fine for validation-path tests that never reach storage.
func setupTestAuthHandler(_ *testing.T) *AuthHandler {
	passwordConfig := &config.PasswordConfig{
		BcryptCost: 10, // Lower cost for faster tests
	}
	jwtConfig := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	}

	userSvc := NewUserService(nil, passwordConfig)
	jwtSvc := NewJWTService(jwtConfig)
	return NewAuthHandler(userSvc, jwtSvc)
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing name",
			reqBody: map[string]string{"email": "test@example.com", "password": "password123", "role": "labor"},
		},
		{
			name:    "invalid email",
			reqBody: map[string]string{"name": "Test Worker", "email": "invalid-email", "password": "password123", "role": "labor"},
		},
		{
			name:    "password too short",
			reqBody: map[string]string{"name": "Test Worker", "email": "test@example.com", "password": "short", "role": "labor"},
		},
		{
			name:    "missing role",
			reqBody: map[string]string{"name": "Test Worker", "email": "test@example.com", "password": "password123"},
		},
		{
			name:    "unknown role",
			reqBody: map[string]string{"name": "Test Worker", "email": "test@example.com", "password": "password123", "role": "admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupTestAuthHandler(t)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Validation failed")
		})
	}
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	handler := setupTestAuthHandler(t)

	// No user ID in context: the auth middleware never ran.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	handler.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdateRole_ValidationErrors(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{"role": "manager"})
	req := httptest.NewRequest(http.MethodPut, "/users/me/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdateRole(w, req)

	// Unauthenticated beats validation: the user ID check runs first.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
