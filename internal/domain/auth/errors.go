package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidRefreshToken    = errors.New("invalid or expired refresh token")
	ErrRefreshTokenRevoked    = errors.New("refresh token has been revoked")
	ErrInvalidVerifyToken     = errors.New("invalid or expired verification token")
	ErrAlreadyVerified        = errors.New("account is already verified")
	ErrGoogleEmailNotVerified = errors.New("google account email is not verified")
	ErrPasswordLoginDisabled  = errors.New("this account uses google sign-in")
)
