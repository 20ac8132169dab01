package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StaffID        int64           `json:"staff_id"`
	ShiftID        *int64          `json:"shift_id,omitempty"`
	PayPeriodStart string          `json:"pay_period_start"`
	PayPeriodEnd   string          `json:"pay_period_end"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Notes          string          `json:"notes,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	start, startValid := validator.IsValidDate(r.PayPeriodStart)
	if !startValid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "pay_period_start must be YYYY-MM-DD"})
	}
	end, endValid := validator.IsValidDate(r.PayPeriodEnd)
	if !endValid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "pay_period_end must be YYYY-MM-DD"})
	}
	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "pay_period_end must not be before pay_period_start"})
	}
	if !validator.IsNonNegative(r.HoursWorked) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             int64           `json:"id"`
	StaffID        int64           `json:"staff_id"`
	ShiftID        *int64          `json:"shift_id,omitempty"`
	PayPeriodStart string          `json:"pay_period_start"`
	PayPeriodEnd   string          `json:"pay_period_end"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
}

func ToResponse(t *Timesheet) Response {
	return Response{
		ID:             t.ID,
		StaffID:        t.StaffID,
		ShiftID:        t.ShiftID,
		PayPeriodStart: t.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:   t.PayPeriodEnd.Format("2006-01-02"),
		HoursWorked:    t.HoursWorked,
		Status:         t.Status,
		Notes:          t.Notes,
	}
}
