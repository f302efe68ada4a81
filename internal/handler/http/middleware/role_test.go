package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "u1",
		"role":    role,
	})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/agreements", nil)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestReviewerOnlyRejectsEmployeeWithForbidden(t *testing.T) {
	w := httptest.NewRecorder()
	ReviewerOnly(okHandler()).ServeHTTP(w, requestWithRole(t, "employee"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewerOnlyAdmitsReviewerRoles(t *testing.T) {
	for _, role := range []string{"supervisor", "hod", "admin"} {
		w := httptest.NewRecorder()
		ReviewerOnly(okHandler()).ServeHTTP(w, requestWithRole(t, role))

		assert.Equal(t, http.StatusOK, w.Code, "role %s should pass", role)
	}
}

func TestReviewerOnlyRejectsMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/agreements", nil)
	ReviewerOnly(okHandler()).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	AdminOnly(okHandler()).ServeHTTP(w, requestWithRole(t, "supervisor"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyAdmitsAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	AdminOnly(okHandler()).ServeHTTP(w, requestWithRole(t, "admin"))

	assert.Equal(t, http.StatusOK, w.Code)
}
