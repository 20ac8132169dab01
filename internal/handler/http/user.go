package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/handler/http/middleware"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)

	CreateRole(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	ListPrivileges(w http.ResponseWriter, r *http.Request)
	SetRolePrivileges(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	result, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.CurrentCompanyID(r)
	if !ok {
		if fromQuery := queryInt64Ptr(r, "company_id"); fromQuery != nil {
			companyID = *fromQuery
		} else {
			response.BadRequest(w, "Company ID is required", nil)
			return
		}
	}

	result, err := h.userService.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.userService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deactivated", nil)
}

// ========== ROLES ==========

func (h *userHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req user.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.CreateRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created", result)
}

func (h *userHandlerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	result, err := h.userService.GetRole(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) ListPrivileges(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListPrivileges(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) SetRolePrivileges(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	var req struct {
		PrivilegeIDs []int64 `json:"privilege_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.SetRolePrivileges(r.Context(), id, req.PrivilegeIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	if id == 0 {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	if err := h.userService.DeleteRole(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role deleted successfully", nil)
}
