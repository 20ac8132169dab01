package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/compliance"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

// Uploaded compliance files are capped at 10 MiB.
const maxUploadSize = 10 << 20

type ComplianceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
	DownloadFile(w http.ResponseWriter, r *http.Request)
}

type complianceHandlerImpl struct {
	complianceService compliance.Service
}

func NewComplianceHandler(complianceService compliance.Service) ComplianceHandler {
	return &complianceHandlerImpl{complianceService: complianceService}
}

func (h *complianceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req compliance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.complianceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compliance document created", result)
}

func (h *complianceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	result, err := h.complianceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *complianceHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := idParam(r, "staffId")
	if staffID == 0 {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.complianceService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *complianceHandlerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A file field is required", nil)
		return
	}
	defer file.Close()

	result, err := h.complianceService.AttachFile(r.Context(), id, header.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File attached", result)
}

func (h *complianceHandlerImpl) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	content, filename, err := h.complianceService.ReadFile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(content)
}
