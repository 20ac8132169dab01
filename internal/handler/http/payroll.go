package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/payroll"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	BulkProcess(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", result)
}

func (h *payrollHandlerImpl) BulkProcess(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkProcess(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bulk payroll run finished", result)
}

func (h *payrollHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.ListFilter{
		StaffID:   queryInt64Ptr(r, "staff_id"),
		CompanyID: queryInt64Ptr(r, "company_id"),
		Status:    r.URL.Query().Get("status"),
		Limit:     queryInt(r, "limit", 20),
		Offset:    queryInt(r, "offset", 0),
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
