package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type PatientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type patientHandlerImpl struct {
	patientService patient.Service
}

func NewPatientHandler(patientService patient.Service) PatientHandler {
	return &patientHandlerImpl{patientService: patientService}
}

func (h *patientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req patient.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.patientService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Patient profile created", result)
}

func (h *patientHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Patient ID is required", nil)
		return
	}

	result, err := h.patientService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		if fromQuery := queryInt64Ptr(r, "company_id"); fromQuery != nil {
			companyID = *fromQuery
		} else {
			response.BadRequest(w, "Company ID is required", nil)
			return
		}
	}

	result, err := h.patientService.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Patient ID is required", nil)
		return
	}

	var req patient.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.patientService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
