package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/shift"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift scheduled", result)
}

func (h *shiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	result, err := h.shiftService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := idParam(r, "staffId")
	if staffID == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	// Default to the current week when no range is given.
	from := time.Now().AddDate(0, 0, -7)
	to := time.Now().AddDate(0, 0, 7)
	if raw := r.URL.Query().Get("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			from = t
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			to = t
		}
	}

	result, err := h.shiftService.ListByStaff(r.Context(), staffID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.shiftService.Start)
}

func (h *shiftHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.shiftService.End)
}

func (h *shiftHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	result, err := h.shiftService.Verify(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id, staffID int64) (shift.Response, error),
) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StaffID <= 0 {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	result, err := fn(r.Context(), id, req.StaffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
