package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/country"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type CountryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type countryHandlerImpl struct {
	countryService country.Service
}

func NewCountryHandler(countryService country.Service) CountryHandler {
	return &countryHandlerImpl{countryService: countryService}
}

func (h *countryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req country.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.countryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Country created", result)
}

func (h *countryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Country ID is required", nil)
		return
	}

	result, err := h.countryService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *countryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.countryService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *countryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Country ID is required", nil)
		return
	}

	var req country.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.countryService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *countryHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Country ID is required", nil)
		return
	}

	if err := h.countryService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Country deactivated", nil)
}
