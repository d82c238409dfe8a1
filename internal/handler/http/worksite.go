package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
	"github.com/elia-nu/geo-sub002/internal/handler/http/response"
)

type WorkSiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type workSiteHandlerImpl struct {
	siteService geofence.SiteService
}

func NewWorkSiteHandler(siteService geofence.SiteService) WorkSiteHandler {
	return &workSiteHandlerImpl{
		siteService: siteService,
	}
}

// Create implements WorkSiteHandler.
func (h *workSiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.CreateWorkSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.siteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work site created", result)
}

// List implements WorkSiteHandler.
func (h *workSiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.siteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignEmployee implements WorkSiteHandler.
func (h *workSiteHandlerImpl) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	var req geofence.AssignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.siteService.AssignEmployee(r.Context(), chi.URLParam(r, "id"), req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee assigned to work site", nil)
}

// Delete implements WorkSiteHandler.
func (h *workSiteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.siteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work site deleted", nil)
}
