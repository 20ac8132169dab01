package company

import "github.com/caresync/staffing-backend-go/internal/pkg/validator"

type CreateRequest struct {
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.CountryID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "country_id", Message: "country_id is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type Response struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
}

func ToResponse(c *Company) Response {
	return Response{
		ID:        c.ID,
		Name:      c.Name,
		CountryID: c.CountryID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
	}
}
