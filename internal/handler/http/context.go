package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// actorFromRequest pulls the caller's identity out of the verified JWT
// claims. Returns zero values when the claims are missing; routes behind
// AuthRequired never see that case.
func actorFromRequest(r *http.Request) (id string, role string) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", ""
	}
	id, _ = claims["user_id"].(string)
	role, _ = claims["role"].(string)
	return id, role
}
