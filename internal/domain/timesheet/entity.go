package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusVerified  = "verified"
	StatusRejected  = "rejected"
)

// Timesheet records hours worked by a staff member over a pay period.
// Only verified timesheets feed payroll.
type Timesheet struct {
	ID             int64           `json:"id"`
	StaffID        int64           `json:"staff_id"`
	ShiftID        *int64          `json:"shift_id,omitempty"`
	PayPeriodStart time.Time       `json:"pay_period_start"`
	PayPeriodEnd   time.Time       `json:"pay_period_end"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Status         string          `json:"status"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`
	VerifiedAt     *time.Time      `json:"verified_at,omitempty"`
	VerifiedBy     *int64          `json:"verified_by,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
