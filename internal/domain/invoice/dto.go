package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type LineItemRequest struct {
	RequestID   *int64          `json:"request_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateRequest struct {
	PatientID int64             `json:"patient_id"`
	Currency  string            `json:"currency"`
	DueAt     string            `json:"due_at,omitempty"`
	Items     []LineItemRequest `json:"items"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PatientID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "patient_id", Message: "patient_id is required"})
	}
	if validator.IsEmpty(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency is required"})
	}
	if _, valid := validator.IsValidDate(r.DueAt); r.DueAt != "" && !valid {
		errs = append(errs, validator.ValidationError{Field: "due_at", Message: "due_at must be YYYY-MM-DD"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line item is required"})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "line item description is required"})
			break
		}
		if item.Quantity.LessThanOrEqual(decimal.Zero) || item.UnitPrice.LessThan(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "line item quantity must be positive and unit_price non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	Invoice
	Items []LineItem `json:"items"`
}
