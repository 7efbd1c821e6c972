package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/idea-vault/internal/service"
	"github.com/MKhiriev/idea-vault/internal/utils"
	"github.com/MKhiriev/idea-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// identityCapturingHandler records the identity stored in the request
// context by the auth middleware.
func identityCapturingHandler(captured *models.Identity, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
			*captured = identity
		}
		w.WriteHeader(http.StatusOK)
	})
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// TestAuthMiddleware_Success verifies that a valid bearer token resolves
// to the caller's identity in the request context.
func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: 7}, nil
		},
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return registeredUser, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var captured models.Identity
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(identityCapturingHandler(&captured, &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, int64(7), captured.UserID)
	assert.Equal(t, "jane.doe@example.com", captured.Email)
}

// TestAuthMiddleware_NoHeader verifies that a missing Authorization header
// fails with 401 before any token parsing.
func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var captured models.Identity
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	rec := httptest.NewRecorder()

	h.auth(identityCapturingHandler(&captured, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

// TestAuthMiddleware_MalformedHeader verifies that a header without a token
// part fails with 401.
func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var captured models.Identity
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(identityCapturingHandler(&captured, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

// TestAuthMiddleware_InvalidToken verifies that a token that fails
// validation is rejected with 403, distinct from the missing-token 401.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	var captured models.Identity
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(identityCapturingHandler(&captured, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

// TestAuthMiddleware_SubjectGone verifies that a token whose account was
// deleted after issuance is rejected with 403.
func TestAuthMiddleware_SubjectGone(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
		currentUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	var captured models.Identity
	var called bool

	req := httptest.NewRequest(http.MethodGet, "/api/ideas", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(identityCapturingHandler(&captured, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	t.Run("valid bearer", func(t *testing.T) {
		token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("scheme only", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("Bearer")
		require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})

	t.Run("empty token part", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("Bearer ")
		require.ErrorIs(t, err, ErrEmptyToken)
	})
}
