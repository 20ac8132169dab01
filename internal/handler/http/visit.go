package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/visit"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type VisitHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	ListByPatient(w http.ResponseWriter, r *http.Request)
	SubmitFeedback(w http.ResponseWriter, r *http.Request)
	GetFeedback(w http.ResponseWriter, r *http.Request)
	StaffRating(w http.ResponseWriter, r *http.Request)
}

type visitHandlerImpl struct {
	visitService visit.Service
}

func NewVisitHandler(visitService visit.Service) VisitHandler {
	return &visitHandlerImpl{visitService: visitService}
}

func (h *visitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req visit.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.visitService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Visit recorded", result)
}

func (h *visitHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Visit ID is required", nil)
		return
	}

	result, err := h.visitService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *visitHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := idParam(r, "staffId")
	if staffID == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.visitService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *visitHandlerImpl) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := idParam(r, "patientId")
	if patientID == 0 {
		response.BadRequest(w, "Patient ID is required", nil)
		return
	}

	result, err := h.visitService.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *visitHandlerImpl) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Visit ID is required", nil)
		return
	}

	var req struct {
		PatientID int64 `json:"patient_id"`
		visit.FeedbackRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.PatientID <= 0 {
		response.BadRequest(w, "patient_id is required", nil)
		return
	}

	result, err := h.visitService.SubmitFeedback(r.Context(), id, req.PatientID, req.FeedbackRequest)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback submitted", result)
}

func (h *visitHandlerImpl) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Visit ID is required", nil)
		return
	}

	result, err := h.visitService.GetFeedback(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *visitHandlerImpl) StaffRating(w http.ResponseWriter, r *http.Request) {
	staffID := idParam(r, "staffId")
	if staffID == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	avg, count, err := h.visitService.StaffRating(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"staff_id":       staffID,
		"average_rating": avg,
		"rating_count":   count,
	})
}
