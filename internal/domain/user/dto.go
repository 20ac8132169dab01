package user

import "github.com/caresync/staffing-backend-go/internal/pkg/validator"

type CreateRoleRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Privileges  []int64 `json:"privileges"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	RoleID   *int64  `json:"role_id,omitempty"`
}

type Response struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	CompanyID  *int64 `json:"company_id,omitempty"`
	CountryID  *int64 `json:"country_id,omitempty"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

func ToResponse(u *User, roleName string) Response {
	return Response{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Role:       roleName,
		CompanyID:  u.CompanyID,
		CountryID:  u.CountryID,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
	}
}

type RoleResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsSystem    bool        `json:"is_system"`
	Privileges  []Privilege `json:"privileges,omitempty"`
}
