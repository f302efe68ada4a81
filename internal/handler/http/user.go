package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/user"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	usersvc "github.com/hrpms/pms-backend-go/internal/service/user"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService usersvc.UserService
}

func NewUserHandler(userService usersvc.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	optional := func(key string) *string {
		if v := q.Get(key); v != "" {
			return &v
		}
		return nil
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	filter := user.ListFilter{
		Search:       optional("search"),
		RoleID:       optional("role_id"),
		DepartmentID: optional("department_id"),
		UnitID:       optional("unit_id"),
		Page:         page,
		Limit:        limit,
	}

	users, total, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, users, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.userService.UpdateUser(r.Context(), req); err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", nil)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, err := claimedUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// Lock implements UserHandler. A locked user cannot authenticate.
func (h *UserHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.SetLocked(r.Context(), chi.URLParam(r, "id"), true); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User locked successfully", nil)
}

// Unlock implements UserHandler.
func (h *UserHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.SetLocked(r.Context(), chi.URLParam(r, "id"), false); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User unlocked successfully", nil)
}
