package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
)

// stubAgreementService lets each test pin just the method it exercises.
type stubAgreementService struct {
	createFn           func(ctx context.Context, viewer agreement.Viewer, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error)
	submitFn           func(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error)
	supervisorDecideFn func(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error)
}

func (s *stubAgreementService) CreateAgreement(ctx context.Context, viewer agreement.Viewer, req agreement.CreateAgreementRequest) (agreement.AgreementResponse, error) {
	return s.createFn(ctx, viewer, req)
}

func (s *stubAgreementService) GetAgreement(context.Context, agreement.Viewer, string) (agreement.AgreementResponse, error) {
	return agreement.AgreementResponse{}, nil
}

func (s *stubAgreementService) UpdateAgreement(context.Context, agreement.Viewer, agreement.UpdateAgreementRequest) error {
	return nil
}

func (s *stubAgreementService) DeleteAgreement(context.Context, agreement.Viewer, string) error {
	return nil
}

func (s *stubAgreementService) Submit(ctx context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error) {
	return s.submitFn(ctx, viewer, id)
}

func (s *stubAgreementService) SupervisorDecide(ctx context.Context, viewer agreement.Viewer, id string, req agreement.DecisionRequest) (agreement.AgreementResponse, error) {
	return s.supervisorDecideFn(ctx, viewer, id, req)
}

func (s *stubAgreementService) HODDecide(context.Context, agreement.Viewer, string, agreement.DecisionRequest) (agreement.AgreementResponse, error) {
	return agreement.AgreementResponse{}, nil
}

func (s *stubAgreementService) ListMy(context.Context, agreement.Viewer, agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error) {
	return nil, 0, 0, nil
}

func (s *stubAgreementService) ListForReview(context.Context, agreement.Viewer, *string, agreement.ListQuery) ([]agreement.AgreementResponse, int, int, error) {
	return nil, 0, 0, nil
}

func authenticatedRequest(t *testing.T, method, target, body, role string) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "u1",
		"role":    role,
	})
	require.NoError(t, err)

	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// ===== HANDLER TESTS =====

func TestAgreementSubmitSuccess(t *testing.T) {
	svc := &stubAgreementService{
		submitFn: func(_ context.Context, viewer agreement.Viewer, id string) (agreement.AgreementResponse, error) {
			assert.Equal(t, "u1", viewer.ID)
			assert.Equal(t, "ag1", id)
			return agreement.AgreementResponse{
				Agreement: agreement.Agreement{ID: id, Status: agreement.StatusPendingSupervisor},
			}, nil
		},
	}
	handler := NewAgreementHandler(svc, nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/v1/agreements/ag1/submit", "", "employee")
	r = withURLParam(r, "id", "ag1")
	w := httptest.NewRecorder()

	handler.Submit(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Agreement submitted successfully", envelope["message"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending_supervisor", data["status"])
}

func TestAgreementSubmitWithoutTokenUnauthorized(t *testing.T) {
	handler := NewAgreementHandler(&stubAgreementService{}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/agreements/ag1/submit", nil)
	w := httptest.NewRecorder()

	handler.Submit(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}

func TestAgreementCreateRejectsMalformedBody(t *testing.T) {
	handler := NewAgreementHandler(&stubAgreementService{}, nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/v1/agreements", "{not json", "employee")
	w := httptest.NewRecorder()

	handler.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAgreementSupervisorDecisionAlreadyProcessedConflict(t *testing.T) {
	svc := &stubAgreementService{
		supervisorDecideFn: func(context.Context, agreement.Viewer, string, agreement.DecisionRequest) (agreement.AgreementResponse, error) {
			return agreement.AgreementResponse{}, agreement.ErrAgreementAlreadyProcessed
		},
	}
	handler := NewAgreementHandler(svc, nil)

	r := authenticatedRequest(t, http.MethodPost, "/api/v1/agreements/ag1/supervisor-approval", `{"action":"approve"}`, "supervisor")
	r = withURLParam(r, "id", "ag1")
	w := httptest.NewRecorder()

	handler.SupervisorDecision(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)

	envelope := decodeEnvelope(t, w)
	errDetail, ok := envelope["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", errDetail["code"])
}
