package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)

	SetSalaryConfig(w http.ResponseWriter, r *http.Request)
	GetActiveSalaryConfig(w http.ResponseWriter, r *http.Request)
	ListSalaryConfigs(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.Service
}

func NewStaffHandler(staffService staff.Service) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff profile created", result)
}

func (h *staffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.staffService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *staffHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		if fromQuery := queryInt64Ptr(r, "company_id"); fromQuery != nil {
			companyID = *fromQuery
		} else {
			response.BadRequest(w, "Company ID is required", nil)
			return
		}
	}

	result, err := h.staffService.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.staffService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SALARY CONFIGS ==========

func (h *staffHandlerImpl) SetSalaryConfig(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.SalaryConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.staffService.SetSalaryConfig(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary configuration set", result)
}

func (h *staffHandlerImpl) GetActiveSalaryConfig(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.staffService.GetActiveSalaryConfig(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *staffHandlerImpl) ListSalaryConfigs(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.staffService.ListSalaryConfigs(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
