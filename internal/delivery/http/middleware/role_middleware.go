package middleware

import (
	"net/http"

	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/identity"
	"calorie-planner/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// The role comes from the identity AuthMiddleware attached (JWT claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := identity.FromContext(r.Context())
			if !ident.IsSignedIn() {
				response.Unauthorized(w, "Role information not found")
				return
			}
			role := ident.Role

			// Check if user's role is in allowed roles
			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
