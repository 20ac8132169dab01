package country

import (
	"strings"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if !validator.IsValidCountryCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be a 2-3 letter ISO country code"})
	}
	if validator.IsEmpty(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Currency *string `json:"currency,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type Response struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
	IsActive bool   `json:"is_active"`
}

func ToResponse(c *Country) Response {
	return Response{
		ID:       c.ID,
		Name:     c.Name,
		Code:     c.Code,
		Currency: c.Currency,
		IsActive: c.IsActive,
	}
}
