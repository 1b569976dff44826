package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/floracart/floracart/internal/platform/httpx"
)

type stubRepo struct {
	users map[string]*User
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return user, nil
}

func newAuthFixture(t *testing.T) (*Handler, *SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubRepo{users: map[string]*User{
		"admin@floracart.test": {ID: 1, Email: "admin@floracart.test", PasswordHash: string(hash), IsActive: true},
		"gone@floracart.test":  {ID: 2, Email: "gone@floracart.test", PasswordHash: string(hash), IsActive: false},
	}}

	sessions := NewSessionManager(client, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(logger, NewService(repo), sessions, false), sessions
}

func doLogin(t *testing.T, handler *Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	handler.MountRoutes(r)

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesSession(t *testing.T) {
	handler, sessions := newAuthFixture(t)

	rec := doLogin(t, handler, "admin@floracart.test", "correct-horse")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Token)
	require.Equal(t, "admin@floracart.test", payload.Email)

	email, err := sessions.Lookup(context.Background(), payload.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@floracart.test", email)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.Equal(t, payload.Token, cookie.Value)
	require.True(t, cookie.HttpOnly)
}

func TestLoginRejections(t *testing.T) {
	handler, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"wrong password", "admin@floracart.test", "incorrect-pony", http.StatusUnauthorized},
		{"unknown email", "nobody@floracart.test", "correct-horse", http.StatusUnauthorized},
		{"inactive account", "gone@floracart.test", "correct-horse", http.StatusUnauthorized},
		{"short password", "admin@floracart.test", "short", http.StatusBadRequest},
		{"malformed email", "not-an-email", "correct-horse", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doLogin(t, handler, tc.email, tc.password)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	_, sessions := newAuthFixture(t)
	ctx := context.Background()

	token, err := sessions.Create(ctx, "admin@floracart.test")
	require.NoError(t, err)

	var seenEmail string
	protected := sessions.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin@floracart.test", seenEmail)

	req = httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token+"-stale")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	handler, sessions := newAuthFixture(t)
	ctx := context.Background()

	token, err := sessions.Create(ctx, "admin@floracart.test")
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.MountRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = sessions.Lookup(ctx, token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
