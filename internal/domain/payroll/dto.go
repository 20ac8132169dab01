package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type ProcessRequest struct {
	StaffID        int64            `json:"staff_id"`
	PayPeriodStart string           `json:"pay_period_start"`
	PayPeriodEnd   string           `json:"pay_period_end"`
	HoursWorked    *decimal.Decimal `json:"hours_worked,omitempty"`
	TimesheetID    *int64           `json:"timesheet_id,omitempty"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if _, valid := validator.IsValidDate(r.PayPeriodStart); !valid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "pay_period_start must be YYYY-MM-DD"})
	}
	if _, valid := validator.IsValidDate(r.PayPeriodEnd); !valid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "pay_period_end must be YYYY-MM-DD"})
	}
	if r.HoursWorked != nil && !validator.IsNonNegative(*r.HoursWorked) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodStart parses the validated period start date.
func (r *ProcessRequest) PeriodStart() time.Time {
	t, _ := time.Parse("2006-01-02", r.PayPeriodStart)
	return t
}

func (r *ProcessRequest) PeriodEnd() time.Time {
	t, _ := time.Parse("2006-01-02", r.PayPeriodEnd)
	return t
}

type BulkProcessRequest struct {
	CompanyID      int64  `json:"company_id"`
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`
}

func (r *BulkProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if _, valid := validator.IsValidDate(r.PayPeriodStart); !valid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "pay_period_start must be YYYY-MM-DD"})
	}
	if _, valid := validator.IsValidDate(r.PayPeriodEnd); !valid {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "pay_period_end must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *BulkProcessRequest) PeriodStart() time.Time {
	t, _ := time.Parse("2006-01-02", r.PayPeriodStart)
	return t
}

func (r *BulkProcessRequest) PeriodEnd() time.Time {
	t, _ := time.Parse("2006-01-02", r.PayPeriodEnd)
	return t
}

// BulkFailure reports one staff member whose run did not produce a payroll.
type BulkFailure struct {
	StaffID int64  `json:"staff_id"`
	Reason  string `json:"reason"`
}

// BulkProcessResponse carries both the successful payrolls and the
// per-staff failures, so callers can tell "nothing to pay" apart from
// "everything failed".
type BulkProcessResponse struct {
	Payrolls []Payroll     `json:"payrolls"`
	Failures []BulkFailure `json:"failures"`
}

type ListFilter struct {
	StaffID   *int64
	CompanyID *int64
	Status    string
	Limit     int
	Offset    int
}
