package auth

import "github.com/caresync/staffing-backend-go/internal/pkg/validator"

const minPasswordLength = 8

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CompanyID *int64 `json:"company_id,omitempty"`
	CountryID *int64 `json:"country_id,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < minPasswordLength {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GoogleLoginRequest struct {
	Code string `json:"code"`
}

func (r *GoogleLoginRequest) Validate() error {
	if validator.IsEmpty(r.Code) {
		return validator.ValidationErrors{{Field: "code", Message: "code is required"}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginResponse struct {
	TokenResponse
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
