package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	agreementsvc "github.com/hrpms/pms-backend-go/internal/service/agreement"
	reportsvc "github.com/hrpms/pms-backend-go/internal/service/report"
)

type AgreementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	SupervisorDecision(w http.ResponseWriter, r *http.Request)
	HODDecision(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	ListForReview(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type AgreementHandlerImpl struct {
	agreementService agreementsvc.AgreementService
	reportService    reportsvc.ReportService
}

func NewAgreementHandler(agreementService agreementsvc.AgreementService, reportService reportsvc.ReportService) AgreementHandler {
	return &AgreementHandlerImpl{
		agreementService: agreementService,
		reportService:    reportService,
	}
}

// parseListQuery reads the filter and pagination query parameters.
func parseListQuery(r *http.Request) agreement.ListQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return agreement.ListQuery{
		Filter: agreement.Filter{
			Search:       q.Get("search"),
			Status:       q.Get("status"),
			DepartmentID: q.Get("department_id"),
			UnitID:       q.Get("unit_id"),
			Period:       q.Get("period"),
			Year:         q.Get("year"),
		},
		Page:     page,
		PageSize: limit,
	}
}

// Create implements AgreementHandler.
func (h *AgreementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req agreement.CreateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create agreement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.agreementService.CreateAgreement(r.Context(), viewer, req)
	if err != nil {
		slog.Error("Create agreement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Agreement created successfully", created)
}

// Get implements AgreementHandler.
func (h *AgreementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := h.agreementService.GetAgreement(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements AgreementHandler.
func (h *AgreementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req agreement.UpdateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update agreement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.agreementService.UpdateAgreement(r.Context(), viewer, req); err != nil {
		slog.Error("Update agreement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agreement updated successfully", nil)
}

// Delete implements AgreementHandler.
func (h *AgreementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.agreementService.DeleteAgreement(r.Context(), viewer, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agreement deleted successfully", nil)
}

// Submit implements AgreementHandler.
func (h *AgreementHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	submitted, err := h.agreementService.Submit(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Submit agreement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agreement submitted successfully", submitted)
}

// SupervisorDecision implements AgreementHandler.
func (h *AgreementHandlerImpl) SupervisorDecision(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req agreement.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Supervisor decision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.agreementService.SupervisorDecide(r.Context(), viewer, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Supervisor decision service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", decided)
}

// HODDecision implements AgreementHandler.
func (h *AgreementHandlerImpl) HODDecision(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req agreement.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("HOD decision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.agreementService.HODDecide(r.Context(), viewer, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("HOD decision service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", decided)
}

// ListMy implements AgreementHandler: the caller's own agreements, drafts
// included.
func (h *AgreementHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := parseListQuery(r)
	items, total, totalPages, err := h.agreementService.ListMy(r.Context(), viewer, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       query.Page,
		Limit:      query.PageSize,
		TotalItems: int64(total),
		TotalPages: totalPages,
	})
}

// ListForReview implements AgreementHandler: the reviewer-facing listing,
// anchored to the viewer's department unless a department filter is given.
func (h *AgreementHandlerImpl) ListForReview(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := parseListQuery(r)
	items, total, totalPages, err := h.agreementService.ListForReview(r.Context(), viewer, claimedDepartmentID(r), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       query.Page,
		Limit:      query.PageSize,
		TotalItems: int64(total),
		TotalPages: totalPages,
	})
}

// Report implements AgreementHandler: a printable PDF of the agreement.
func (h *AgreementHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	viewer, err := claimedViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	pdfBytes, err := h.reportService.AgreementPDF(r.Context(), viewer, id)
	if err != nil {
		slog.Error("Agreement report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="agreement-`+id+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
