package middleware

import (
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHR requires the hr role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, person.ErrHRAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(person.RoleHR) {
			response.HandleError(w, person.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireLeader requires the leader or hr role
func RequireLeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, person.ErrLeaderAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, person.ErrLeaderAccessRequired)
			return
		}

		role := person.Role(roleStr)
		if role != person.RoleLeader && role != person.RoleHR {
			response.HandleError(w, person.ErrLeaderAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
