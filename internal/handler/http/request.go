package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	ListByPatient(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	Assign(w http.ResponseWriter, r *http.Request)
	FindMatches(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) RequestHandler {
	return &requestHandlerImpl{requestService: requestService}
}

func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		response.Forbidden(w, "Company membership required")
		return
	}

	var req request.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.requestService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service request created", result)
}

func (h *requestHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *requestHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		response.Forbidden(w, "Company membership required")
		return
	}
	status := r.URL.Query().Get("status")

	result, err := h.requestService.ListByCompany(r.Context(), companyID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *requestHandlerImpl) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := idParam(r, "patientId")
	if patientID == 0 {
		response.BadRequest(w, "Patient ID is required", nil)
		return
	}

	result, err := h.requestService.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *requestHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	if err := h.requestService.Cancel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service request cancelled", nil)
}

func (h *requestHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	assignedBy, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req request.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.requestService.Assign(r.Context(), id, assignedBy, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff assigned to request", result)
}

func (h *requestHandlerImpl) FindMatches(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}
	limit := queryInt(r, "limit", 10)

	result, err := h.requestService.FindMatches(r.Context(), id, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *requestHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Accept, "Assignment accepted")
}

func (h *requestHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Start, "Service request started")
}

func (h *requestHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.Complete, "Service request completed")
}

func (h *requestHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, requestID, staffID int64) error,
	message string,
) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StaffID <= 0 {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	if err := fn(r.Context(), id, req.StaffID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}
