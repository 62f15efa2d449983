package middleware

import (
	"context"
	"net/http"
	"strings"

	"calorie-planner/internal/identity"
	"calorie-planner/pkg/response"
)

type contextKey string

// TokenIDKey holds the id of the access token a signed-in request carried.
// Everything else about the caller lives on identity.FromContext.
const TokenIDKey contextKey = "token_id"

// TokenAuthenticator resolves a bearer token to the identity it was issued to.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (identity.Identity, string, error)
}

type AuthMiddleware struct {
	authenticator TokenAuthenticator
}

func NewAuthMiddleware(authenticator TokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		ident, tokenID, err := m.authenticator.Authenticate(r.Context(), tokenString)
		if err != nil {
			if !ident.IsResolved() {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident, tokenID)))
	})
}

// Identify attaches the caller's identity when a valid token is present and
// lets the request through either way. Missing or rejected tokens make the
// caller anonymous; a failed lookup leaves the identity unresolved.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := identity.Anonymous()
		tokenID := ""

		if tokenString, ok := bearerToken(r.Header.Get("Authorization")); ok {
			resolved, id, err := m.authenticator.Authenticate(r.Context(), tokenString)
			switch {
			case err == nil:
				ident, tokenID = resolved, id
			case !resolved.IsResolved():
				ident = identity.Unresolved()
			}
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident, tokenID)))
	})
}

func bearerToken(header string) (string, bool) {
	// Extract token from "Bearer <token>"
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func withIdentity(ctx context.Context, ident identity.Identity, tokenID string) context.Context {
	ctx = identity.WithContext(ctx, ident)
	if ident.IsSignedIn() {
		ctx = context.WithValue(ctx, TokenIDKey, tokenID)
	}
	return ctx
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
