package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/company"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.companyService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created", result)
}

func (h *companyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Company ID is required", nil)
		return
	}

	result, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *companyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	countryID := queryInt64Ptr(r, "country_id")

	result, err := h.companyService.List(r.Context(), countryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Company ID is required", nil)
		return
	}

	var req company.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.companyService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *companyHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Company ID is required", nil)
		return
	}

	if err := h.companyService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deactivated", nil)
}
