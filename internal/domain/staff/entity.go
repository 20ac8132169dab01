package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is a care worker employed through a company. CountryCode and
// StateProvince are the jurisdiction inputs for payroll tax.
type Staff struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	CompanyID      int64     `json:"company_id"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	CountryCode    string    `json:"country_code"`
	StateProvince  string    `json:"state_province"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SalaryConfig holds the active pay terms for one staff member.
type SalaryConfig struct {
	ID                     int64           `json:"id"`
	StaffID                int64           `json:"staff_id"`
	HourlyRate             decimal.Decimal `json:"hourly_rate"`
	OvertimeThresholdHours decimal.Decimal `json:"overtime_threshold_hours"`
	OvertimeRateMultiplier decimal.Decimal `json:"overtime_rate_multiplier"`
	HasBenefits            bool            `json:"has_benefits"`
	BenefitsDeduction      decimal.Decimal `json:"benefits_deduction"`
	PayFrequency           string          `json:"pay_frequency"`
	EffectiveFrom          time.Time       `json:"effective_from"`
	IsActive               bool            `json:"is_active"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
