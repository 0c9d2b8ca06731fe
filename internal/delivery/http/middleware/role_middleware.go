package middleware

import (
	"net/http"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/response"
)

// RequireRole creates a middleware that checks if the caller has any of
// the required roles. Role is read from context (set by AuthMiddleware
// from JWT claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

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

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireProfessional is a convenience middleware for professional-only endpoints
func RequireProfessional(next http.Handler) http.Handler {
	return RequireRole(entity.RoleProfessional)(next)
}
