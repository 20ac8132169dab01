package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/invoice"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	ListByPatient(w http.ResponseWriter, r *http.Request)
	Issue(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Void(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.Service
}

func NewInvoiceHandler(invoiceService invoice.Service) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

func (h *invoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		response.Forbidden(w, "Company membership required")
		return
	}

	var req invoice.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created", result)
}

func (h *invoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		response.Forbidden(w, "Company membership required")
		return
	}
	status := r.URL.Query().Get("status")

	result, err := h.invoiceService.ListByCompany(r.Context(), companyID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := idParam(r, "patientId")
	if patientID == 0 {
		response.BadRequest(w, "Patient ID is required", nil)
		return
	}

	result, err := h.invoiceService.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.invoiceService.Issue, "Invoice issued")
}

func (h *invoiceHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.invoiceService.MarkPaid, "Invoice marked paid")
}

func (h *invoiceHandlerImpl) Void(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.invoiceService.Void, "Invoice voided")
}

func (h *invoiceHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64) (invoice.Response, error),
	message string,
) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Invoice ID is required", nil)
		return
	}

	result, err := fn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
