package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timesheetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created", result)
}

func (h *timesheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	result, err := h.timesheetService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := idParam(r, "staffId")
	if staffID == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.timesheetService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var req struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StaffID <= 0 {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	result, err := h.timesheetService.Submit(r.Context(), id, req.StaffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	verifiedBy, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	result, err := h.timesheetService.Verify(r.Context(), id, verifiedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	verifiedBy, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timesheetService.Reject(r.Context(), id, verifiedBy, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
