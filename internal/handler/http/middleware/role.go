package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/auth"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
)

func claimedRole(r *http.Request) (user.RoleName, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	name, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.RoleName(name), nil
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimedRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ReviewerOnly admits supervisors, HODs and admins; plain employees are
// rejected. This gates the review listing, not individual decisions, which
// are checked against the assigned reviewer in the service.
func ReviewerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimedRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		switch role {
		case user.RoleSupervisor, user.RoleHOD, user.RoleAdmin:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrReviewerRequired)
		}
	})
}
