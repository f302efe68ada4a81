package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/master/grade"
	"github.com/hrpms/pms-backend-go/internal/domain/master/job"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	mastersvc "github.com/hrpms/pms-backend-go/internal/service/master"
)

// MasterHandler serves the grade/scale and job reference resources.
type MasterHandler interface {
	CreateGrade(w http.ResponseWriter, r *http.Request)
	GetGrade(w http.ResponseWriter, r *http.Request)
	ListGrades(w http.ResponseWriter, r *http.Request)
	UpdateGrade(w http.ResponseWriter, r *http.Request)
	DeleteGrade(w http.ResponseWriter, r *http.Request)

	CreateJob(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService mastersvc.MasterService
}

func NewMasterHandler(masterService mastersvc.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateGrade implements MasterHandler.
func (h *MasterHandlerImpl) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var req grade.CreateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create grade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateGrade(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Grade created successfully", created)
}

// GetGrade implements MasterHandler.
func (h *MasterHandlerImpl) GetGrade(w http.ResponseWriter, r *http.Request) {
	found, err := h.masterService.GetGrade(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListGrades implements MasterHandler.
func (h *MasterHandlerImpl) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.masterService.ListGrades(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grades)
}

// UpdateGrade implements MasterHandler.
func (h *MasterHandlerImpl) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	var req grade.UpdateGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update grade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateGrade(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grade updated successfully", nil)
}

// DeleteGrade implements MasterHandler.
func (h *MasterHandlerImpl) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteGrade(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grade deleted successfully", nil)
}

// CreateJob implements MasterHandler.
func (h *MasterHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created successfully", created)
}

// GetJob implements MasterHandler.
func (h *MasterHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	found, err := h.masterService.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListJobs implements MasterHandler.
func (h *MasterHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.masterService.ListJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// UpdateJob implements MasterHandler.
func (h *MasterHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateJob(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job updated successfully", nil)
}

// DeleteJob implements MasterHandler.
func (h *MasterHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}
