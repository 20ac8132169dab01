package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

// Payroll is the persisted outcome of a single payroll run. Monetary
// fields are immutable once created; only Status transitions afterward
// (pending -> approved -> paid).
type Payroll struct {
	ID                 int64           `json:"id"`
	StaffID            int64           `json:"staff_id"`
	CompanyID          int64           `json:"company_id"`
	CountryID          int64           `json:"country_id"`
	TimesheetID        *int64          `json:"timesheet_id,omitempty"`
	PayPeriodStart     time.Time       `json:"pay_period_start"`
	PayPeriodEnd       time.Time       `json:"pay_period_end"`
	HoursWorked        decimal.Decimal `json:"hours_worked"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	GrossPay           decimal.Decimal `json:"gross_pay"`
	FederalTax         decimal.Decimal `json:"federal_tax"`
	StateProvincialTax decimal.Decimal `json:"state_provincial_tax"`
	SocialSecurityTax  decimal.Decimal `json:"social_security_tax"`
	MedicareTax        decimal.Decimal `json:"medicare_tax"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	Breakdown          Breakdown       `json:"breakdown"`
	Status             string          `json:"status"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Breakdown is the audit record stored alongside each payroll run.
type Breakdown struct {
	CountryCode   string          `json:"country_code"`
	StateProvince *string         `json:"state_province"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	RegularPay    decimal.Decimal `json:"regular_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	YTDGross      decimal.Decimal `json:"ytd_gross"`
	TaxBreakdown  TaxBreakdown    `json:"tax_breakdown"`
}

type TaxBreakdown struct {
	FederalTax         decimal.Decimal `json:"federal_tax"`
	StateProvincialTax decimal.Decimal `json:"state_provincial_tax"`
	SocialSecurityTax  decimal.Decimal `json:"social_security_tax"`
	MedicareTax        decimal.Decimal `json:"medicare_tax"`
	BenefitsDeduction  decimal.Decimal `json:"benefits_deduction"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
}
