package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

// RequireRoles allows only the named roles through.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Role privilege required")
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "Role privilege required")
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return RequireRoles(user.RoleSuperAdmin, user.RoleAdmin)(next)
}

func SuperAdminOnly(next http.Handler) http.Handler {
	return RequireRoles(user.RoleSuperAdmin)(next)
}
