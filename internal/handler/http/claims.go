package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/domain/auth"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
)

// claimedUserID extracts the authenticated user id from the access token.
func claimedUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// claimedViewer builds the agreement viewer identity from the access token.
func claimedViewer(r *http.Request) (agreement.Viewer, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return agreement.Viewer{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return agreement.Viewer{}, auth.ErrInvalidToken
	}

	roleName, _ := claims["role"].(string)
	return agreement.Viewer{
		ID:   userID,
		Role: user.RoleName(roleName),
	}, nil
}

// claimedDepartmentID returns the viewer's department claim, nil when absent.
func claimedDepartmentID(r *http.Request) *string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil
	}

	departmentID, ok := claims["department_id"].(string)
	if !ok || departmentID == "" {
		return nil
	}
	return &departmentID
}
