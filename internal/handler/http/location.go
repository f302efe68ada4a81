package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpms/pms-backend-go/internal/domain/location"
	"github.com/hrpms/pms-backend-go/internal/handler/http/response"
	locationsvc "github.com/hrpms/pms-backend-go/internal/service/location"
)

// LocationHandler serves the region/district/county/subcounty/parish/village
// hierarchy. Child listings accept a parent id query parameter so the
// frontend can cascade its dropdowns.
type LocationHandler interface {
	CreateRegion(w http.ResponseWriter, r *http.Request)
	ListRegions(w http.ResponseWriter, r *http.Request)
	UpdateRegion(w http.ResponseWriter, r *http.Request)
	DeleteRegion(w http.ResponseWriter, r *http.Request)

	CreateDistrict(w http.ResponseWriter, r *http.Request)
	ListDistricts(w http.ResponseWriter, r *http.Request)
	UpdateDistrict(w http.ResponseWriter, r *http.Request)
	DeleteDistrict(w http.ResponseWriter, r *http.Request)

	CreateCounty(w http.ResponseWriter, r *http.Request)
	ListCounties(w http.ResponseWriter, r *http.Request)
	UpdateCounty(w http.ResponseWriter, r *http.Request)
	DeleteCounty(w http.ResponseWriter, r *http.Request)

	CreateSubCounty(w http.ResponseWriter, r *http.Request)
	ListSubCounties(w http.ResponseWriter, r *http.Request)
	UpdateSubCounty(w http.ResponseWriter, r *http.Request)
	DeleteSubCounty(w http.ResponseWriter, r *http.Request)

	CreateParish(w http.ResponseWriter, r *http.Request)
	ListParishes(w http.ResponseWriter, r *http.Request)
	UpdateParish(w http.ResponseWriter, r *http.Request)
	DeleteParish(w http.ResponseWriter, r *http.Request)

	CreateVillage(w http.ResponseWriter, r *http.Request)
	ListVillages(w http.ResponseWriter, r *http.Request)
	UpdateVillage(w http.ResponseWriter, r *http.Request)
	DeleteVillage(w http.ResponseWriter, r *http.Request)
}

type LocationHandlerImpl struct {
	locationService locationsvc.LocationService
}

func NewLocationHandler(locationService locationsvc.LocationService) LocationHandler {
	return &LocationHandlerImpl{locationService: locationService}
}

func decodeCreateLocation(w http.ResponseWriter, r *http.Request) (location.CreateLocationRequest, bool) {
	var req location.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	return req, true
}

func decodeUpdateLocation(w http.ResponseWriter, r *http.Request) (location.UpdateLocationRequest, bool) {
	var req location.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	req.ID = chi.URLParam(r, "id")
	return req, true
}

func parentParam(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// ==================== REGION ENDPOINTS ====================

// CreateRegion implements LocationHandler.
func (h *LocationHandlerImpl) CreateRegion(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateRegion(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Region created successfully", created)
}

// ListRegions implements LocationHandler.
func (h *LocationHandlerImpl) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.locationService.ListRegions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, regions)
}

// UpdateRegion implements LocationHandler.
func (h *LocationHandlerImpl) UpdateRegion(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateRegion(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Region updated successfully", nil)
}

// DeleteRegion implements LocationHandler.
func (h *LocationHandlerImpl) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteRegion(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Region deleted successfully", nil)
}

// ==================== DISTRICT ENDPOINTS ====================

// CreateDistrict implements LocationHandler.
func (h *LocationHandlerImpl) CreateDistrict(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateDistrict(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "District created successfully", created)
}

// ListDistricts implements LocationHandler.
func (h *LocationHandlerImpl) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.locationService.ListDistricts(r.Context(), parentParam(r, "region_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, districts)
}

// UpdateDistrict implements LocationHandler.
func (h *LocationHandlerImpl) UpdateDistrict(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateDistrict(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "District updated successfully", nil)
}

// DeleteDistrict implements LocationHandler.
func (h *LocationHandlerImpl) DeleteDistrict(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteDistrict(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "District deleted successfully", nil)
}

// ==================== COUNTY ENDPOINTS ====================

// CreateCounty implements LocationHandler.
func (h *LocationHandlerImpl) CreateCounty(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateCounty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "County created successfully", created)
}

// ListCounties implements LocationHandler.
func (h *LocationHandlerImpl) ListCounties(w http.ResponseWriter, r *http.Request) {
	counties, err := h.locationService.ListCounties(r.Context(), parentParam(r, "district_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counties)
}

// UpdateCounty implements LocationHandler.
func (h *LocationHandlerImpl) UpdateCounty(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateCounty(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "County updated successfully", nil)
}

// DeleteCounty implements LocationHandler.
func (h *LocationHandlerImpl) DeleteCounty(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteCounty(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "County deleted successfully", nil)
}

// ==================== SUBCOUNTY ENDPOINTS ====================

// CreateSubCounty implements LocationHandler.
func (h *LocationHandlerImpl) CreateSubCounty(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateSubCounty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subcounty created successfully", created)
}

// ListSubCounties implements LocationHandler.
func (h *LocationHandlerImpl) ListSubCounties(w http.ResponseWriter, r *http.Request) {
	subcounties, err := h.locationService.ListSubCounties(r.Context(), parentParam(r, "county_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subcounties)
}

// UpdateSubCounty implements LocationHandler.
func (h *LocationHandlerImpl) UpdateSubCounty(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateSubCounty(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subcounty updated successfully", nil)
}

// DeleteSubCounty implements LocationHandler.
func (h *LocationHandlerImpl) DeleteSubCounty(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteSubCounty(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subcounty deleted successfully", nil)
}

// ==================== PARISH ENDPOINTS ====================

// CreateParish implements LocationHandler.
func (h *LocationHandlerImpl) CreateParish(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateParish(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Parish created successfully", created)
}

// ListParishes implements LocationHandler.
func (h *LocationHandlerImpl) ListParishes(w http.ResponseWriter, r *http.Request) {
	parishes, err := h.locationService.ListParishes(r.Context(), parentParam(r, "subcounty_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, parishes)
}

// UpdateParish implements LocationHandler.
func (h *LocationHandlerImpl) UpdateParish(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateParish(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Parish updated successfully", nil)
}

// DeleteParish implements LocationHandler.
func (h *LocationHandlerImpl) DeleteParish(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteParish(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Parish deleted successfully", nil)
}

// ==================== VILLAGE ENDPOINTS ====================

// CreateVillage implements LocationHandler.
func (h *LocationHandlerImpl) CreateVillage(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreateLocation(w, r)
	if !ok {
		return
	}

	created, err := h.locationService.CreateVillage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Village created successfully", created)
}

// ListVillages implements LocationHandler.
func (h *LocationHandlerImpl) ListVillages(w http.ResponseWriter, r *http.Request) {
	villages, err := h.locationService.ListVillages(r.Context(), parentParam(r, "parish_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, villages)
}

// UpdateVillage implements LocationHandler.
func (h *LocationHandlerImpl) UpdateVillage(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpdateLocation(w, r)
	if !ok {
		return
	}

	if err := h.locationService.UpdateVillage(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Village updated successfully", nil)
}

// DeleteVillage implements LocationHandler.
func (h *LocationHandlerImpl) DeleteVillage(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.DeleteVillage(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Village deleted successfully", nil)
}
