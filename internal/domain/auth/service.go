package auth

import (
	"context"
	"net/http"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)
	LoginWithGoogle(ctx context.Context, req GoogleLoginRequest) (LoginResponse, *http.Cookie, error)
	Refresh(ctx context.Context, rawRefreshToken string) (TokenResponse, *http.Cookie, error)
	Logout(ctx context.Context, rawRefreshToken string) error
	VerifyEmail(ctx context.Context, token string) error
}
