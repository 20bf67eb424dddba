package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/config"
)

func testAuthConfig(t *testing.T, password string) config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.Config{
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "test-secret",
	}
}

func doLogin(t *testing.T, cfg config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := newAuthHandler(cfg)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.login()(rec, req)
	return rec
}

func TestLoginIssuesTokenAcceptedByMiddleware(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2")

	rec := doLogin(t, cfg, `{"password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	middleware := newAuthMiddleware(cfg)
	var reached bool
	protected := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodDelete, "/project/x", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	authRec := httptest.NewRecorder()
	protected.ServeHTTP(authRec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, authRec.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2")

	rec := doLogin(t, cfg, `{"password":"letmein"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2")

	rec := doLogin(t, cfg, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnconfigured(t *testing.T) {
	rec := doLogin(t, config.Config{}, `{"password":"anything"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2")
	middleware := newAuthMiddleware(cfg)
	protected := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached without a valid token")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/project", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthenticateRejectsAllWhenSecretUnconfigured(t *testing.T) {
	middleware := newAuthMiddleware(config.Config{})
	protected := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached without a configured secret")
	}))

	// A token signed with the empty key must not open the unconfigured gate.
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	for _, header := range []string{"", "Bearer " + forged} {
		req := httptest.NewRequest(http.MethodDelete, "/project/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuerCfg := testAuthConfig(t, "hunter2")
	rec := doLogin(t, issuerCfg, `{"password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	verifierCfg := config.Config{"JWT_SECRET": "a-different-secret"}
	middleware := newAuthMiddleware(verifierCfg)
	protected := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("token from another secret must be rejected")
	}))

	req := httptest.NewRequest(http.MethodPost, "/project", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	authRec := httptest.NewRecorder()
	protected.ServeHTTP(authRec, req)
	assert.Equal(t, http.StatusUnauthorized, authRec.Code)
}
