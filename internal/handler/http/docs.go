package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/docs"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type DocsHandler interface {
	CreateAPIKey(w http.ResponseWriter, r *http.Request)
	ListAPIKeys(w http.ResponseWriter, r *http.Request)
	RevokeAPIKey(w http.ResponseWriter, r *http.Request)
	GetPage(w http.ResponseWriter, r *http.Request)
	ListPages(w http.ResponseWriter, r *http.Request)
}

type docsHandlerImpl struct {
	docsService docs.Service
}

func NewDocsHandler(docsService docs.Service) DocsHandler {
	return &docsHandlerImpl{docsService: docsService}
}

func (h *docsHandlerImpl) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.docsService.CreateAPIKey(r.Context(), userID, req.Label)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "API key created", result)
}

func (h *docsHandlerImpl) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	result, err := h.docsService.ListAPIKeys(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *docsHandlerImpl) RevokeAPIKey(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "API key ID is required", nil)
		return
	}

	if err := h.docsService.RevokeAPIKey(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "API key revoked", nil)
}

func (h *docsHandlerImpl) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, "Page slug is required", nil)
		return
	}

	result, err := h.docsService.GetPage(r.Context(), slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *docsHandlerImpl) ListPages(w http.ResponseWriter, r *http.Request) {
	result, err := h.docsService.ListPages(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
