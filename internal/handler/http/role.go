package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/role"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	rolesvc "github.com/hrpms/pms-backend-go/internal/service/role"
)

type RoleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Permissions(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	roleService rolesvc.RoleService
}

func NewRoleHandler(roleService rolesvc.RoleService) RoleHandler {
	return &RoleHandlerImpl{roleService: roleService}
}

// Create implements RoleHandler.
func (h *RoleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.roleService.CreateRole(r.Context(), req)
	if err != nil {
		slog.Error("Create role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created successfully", created)
}

// Get implements RoleHandler.
func (h *RoleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.roleService.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roles)
}

// Update implements RoleHandler.
func (h *RoleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.roleService.UpdateRole(r.Context(), req); err != nil {
		slog.Error("Update role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated successfully", nil)
}

// Delete implements RoleHandler.
func (h *RoleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role deleted successfully", nil)
}

// Permissions implements RoleHandler: the recognized permission catalog.
func (h *RoleHandlerImpl) Permissions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.roleService.Permissions())
}
