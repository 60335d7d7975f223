package middleware

import (
	"net/http"

	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/pkg/response"
)

// RequireRole gates a subtree to a single role. Role IDs are fixed by the
// reference-data migration.
func RequireRole(roleID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			currentRole, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}
			if currentRole != roleID {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}
