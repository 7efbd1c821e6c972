package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/idea-vault/internal/config"
	"github.com/MKhiriev/idea-vault/internal/logger"
	"github.com/MKhiriev/idea-vault/internal/service"
	"github.com/MKhiriev/idea-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router with mocked services so that routing,
// middleware ordering, and handlers can be exercised end to end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return registeredUser, nil
		},
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return registeredUser, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid.jwt.token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 7}, nil
		},
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return registeredUser, nil
		},
	}
	ideas := &mockIdeaService{
		listFn: func(_ context.Context, _ models.Identity, _ models.IdeaFilter) ([]models.Idea, int64, error) {
			return []models.Idea{sampleIdea()}, 1, nil
		},
	}

	h := NewHandler(
		&service.Services{AuthService: auth, IdeaService: ideas},
		&mockPinger{},
		config.App{Environment: config.EnvDevelopment},
		logger.Nop(),
	)
	return h.Init()
}

// TestRoutes_PublicEndpoints verifies that the public surface needs no token.
func TestRoutes_PublicEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("register", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCredentials)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// TestRoutes_ProtectedEndpointsRequireToken verifies that the idea routes
// and the profile route sit behind the auth middleware.
func TestRoutes_ProtectedEndpointsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/ideas"},
		{http.MethodPost, "/api/ideas"},
		{http.MethodGet, "/api/ideas/42"},
		{http.MethodPut, "/api/ideas/42"},
		{http.MethodDelete, "/api/ideas/42"},
	} {
		req := httptest.NewRequest(target.method, target.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must demand a token", target.method, target.path)
	}
}

// TestRoutes_AuthenticatedFlow verifies that a valid bearer token passes the
// middleware and reaches the handler.
func TestRoutes_AuthenticatedFlow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Smart plant watering")
}

// TestRoutes_TraceIDHeader verifies that every response carries a trace id.
func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}
