package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	ident   identity.Identity
	tokenID string
	err     error
}

func (s stubAuthenticator) Authenticate(context.Context, string) (identity.Identity, string, error) {
	return s.ident, s.tokenID, s.err
}

func captureIdentity(got *identity.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = identity.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestIdentify(t *testing.T) {
	userID := uuid.New()
	signedIn := identity.SignedIn(userID, "a@example.com", entity.RoleUser)

	tests := []struct {
		name   string
		header string
		auth   stubAuthenticator
		want   identity.State
	}{
		{"no header", "", stubAuthenticator{}, identity.StateAnonymous},
		{"valid token", "Bearer tok", stubAuthenticator{ident: signedIn, tokenID: "t1"}, identity.StateSignedIn},
		{"rejected token", "Bearer tok", stubAuthenticator{ident: identity.Anonymous(), err: errors.New("revoked")}, identity.StateAnonymous},
		{"lookup failure", "Bearer tok", stubAuthenticator{ident: identity.Unresolved(), err: errors.New("redis down")}, identity.StateUnresolved},
		{"malformed header", "Token tok", stubAuthenticator{ident: signedIn}, identity.StateAnonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got identity.Identity
			h := NewAuthMiddleware(tt.auth).Identify(captureIdentity(&got))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, got.State)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	signedIn := identity.SignedIn(uuid.New(), "a@example.com", entity.RoleAdmin)

	tests := []struct {
		name   string
		header string
		auth   stubAuthenticator
		code   int
	}{
		{"missing header", "", stubAuthenticator{}, http.StatusUnauthorized},
		{"bad format", "Basic abc", stubAuthenticator{}, http.StatusUnauthorized},
		{"rejected", "Bearer tok", stubAuthenticator{ident: identity.Anonymous(), err: errors.New("bad")}, http.StatusUnauthorized},
		{"store failure", "Bearer tok", stubAuthenticator{ident: identity.Unresolved(), err: errors.New("down")}, http.StatusInternalServerError},
		{"ok", "Bearer tok", stubAuthenticator{ident: signedIn, tokenID: "t1"}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got identity.Identity
			h := NewAuthMiddleware(tt.auth).Authenticate(captureIdentity(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAuthenticateAttachesIdentityAndTokenID(t *testing.T) {
	signedIn := identity.SignedIn(uuid.New(), "a@example.com", entity.RoleUser)

	var (
		got     identity.Identity
		tokenID string
		hasID   bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = identity.FromContext(r.Context())
		tokenID, hasID = GetTokenIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := NewAuthMiddleware(stubAuthenticator{ident: signedIn, tokenID: "t1"}).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, signedIn, got)
	assert.True(t, hasID)
	assert.Equal(t, "t1", tokenID)
}

func TestIdentifyAnonymousHasNoTokenID(t *testing.T) {
	var hasID bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasID = GetTokenIDFromContext(r.Context())
	})
	NewAuthMiddleware(stubAuthenticator{}).Identify(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hasID)
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	for role, code := range map[string]int{
		entity.RoleAdmin: http.StatusNoContent,
		entity.RoleUser:  http.StatusForbidden,
	} {
		ident := identity.SignedIn(uuid.New(), "", role)
		h := NewAuthMiddleware(stubAuthenticator{ident: ident, tokenID: "t"}).Authenticate(RequireAdmin(ok))

		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, code, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	RequireAdmin(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	t.Run("listed origin", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"http://localhost:5173"}).Handle(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"http://localhost:5173"}).Handle(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		h := NewCORSMiddleware([]string{"*"}).Handle(next)
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
