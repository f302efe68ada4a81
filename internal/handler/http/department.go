package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/department"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	departmentsvc "github.com/hrpms/pms-backend-go/internal/service/department"
)

type DepartmentHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateUnit(w http.ResponseWriter, r *http.Request)
	GetUnit(w http.ResponseWriter, r *http.Request)
	ListUnits(w http.ResponseWriter, r *http.Request)
	UpdateUnit(w http.ResponseWriter, r *http.Request)
	DeleteUnit(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService departmentsvc.DepartmentService
}

func NewDepartmentHandler(departmentService departmentsvc.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// CreateDepartment implements DepartmentHandler.
func (h *DepartmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", created)
}

// GetDepartment implements DepartmentHandler.
func (h *DepartmentHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	found, err := h.departmentService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListDepartments implements DepartmentHandler.
func (h *DepartmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// UpdateDepartment implements DepartmentHandler.
func (h *DepartmentHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.departmentService.UpdateDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

// DeleteDepartment implements DepartmentHandler.
func (h *DepartmentHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// CreateUnit implements DepartmentHandler.
func (h *DepartmentHandlerImpl) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req department.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departmentService.CreateUnit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unit created successfully", created)
}

// GetUnit implements DepartmentHandler.
func (h *DepartmentHandlerImpl) GetUnit(w http.ResponseWriter, r *http.Request) {
	found, err := h.departmentService.GetUnit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListUnits implements DepartmentHandler. An optional department_id query
// parameter scopes the listing.
func (h *DepartmentHandlerImpl) ListUnits(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentID = &v
	}

	units, err := h.departmentService.ListUnits(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, units)
}

// UpdateUnit implements DepartmentHandler.
func (h *DepartmentHandlerImpl) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.departmentService.UpdateUnit(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit updated successfully", nil)
}

// DeleteUnit implements DepartmentHandler.
func (h *DepartmentHandlerImpl) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.DeleteUnit(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit deleted successfully", nil)
}
