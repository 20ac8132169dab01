package http

import (
	"encoding/json"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/auth"
	"github.com/caresync/staffing-backend-go/internal/handler/http/response"
	"github.com/caresync/staffing-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.Service
	googleService oauth.GoogleService
}

func NewAuthHandler(authService auth.Service, googleService oauth.GoogleService) AuthHandler {
	return &authHandlerImpl{authService: authService, googleService: googleService}
}

func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	userID, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful, please verify your email", map[string]int64{"user_id": userID})
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, cookie, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, cookie)
	response.Success(w, result)
}

func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.googleService.AuthCodeURL("state"), http.StatusTemporaryRedirect)
}

func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	result, cookie, err := h.authService.LoginWithGoogle(r.Context(), auth.GoogleLoginRequest{Code: code})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, cookie)
	response.Success(w, result)
}

func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token cookie is required")
		return
	}

	result, newCookie, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, newCookie)
	response.Success(w, result)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
	})
	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *authHandlerImpl) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.BadRequest(w, "Verification token is required", nil)
		return
	}

	if err := h.authService.VerifyEmail(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email verified", nil)
}
