package staff

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	UserID         int64    `json:"user_id"`
	CompanyID      int64    `json:"company_id"`
	LicenseNumber  string   `json:"license_number"`
	Specialization string   `json:"specialization"`
	CountryCode    string   `json:"country_code"`
	StateProvince  string   `json:"state_province"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	r.CountryCode = strings.ToUpper(strings.TrimSpace(r.CountryCode))
	if !validator.IsValidCountryCode(r.CountryCode) {
		errs = append(errs, validator.ValidationError{Field: "country_code", Message: "country_code must be a 2-3 letter ISO country code"})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	LicenseNumber  *string  `json:"license_number,omitempty"`
	Specialization *string  `json:"specialization,omitempty"`
	StateProvince  *string  `json:"state_province,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	IsAvailable    *bool    `json:"is_available,omitempty"`
}

type SalaryConfigRequest struct {
	HourlyRate             decimal.Decimal  `json:"hourly_rate"`
	OvertimeThresholdHours *decimal.Decimal `json:"overtime_threshold_hours,omitempty"`
	OvertimeRateMultiplier *decimal.Decimal `json:"overtime_rate_multiplier,omitempty"`
	HasBenefits            bool             `json:"has_benefits"`
	BenefitsDeduction      *decimal.Decimal `json:"benefits_deduction,omitempty"`
	PayFrequency           string           `json:"pay_frequency"`
}

func (r *SalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "hourly_rate must be positive"})
	}
	if r.OvertimeThresholdHours != nil && !validator.IsNonNegative(*r.OvertimeThresholdHours) {
		errs = append(errs, validator.ValidationError{Field: "overtime_threshold_hours", Message: "overtime_threshold_hours must not be negative"})
	}
	if r.OvertimeRateMultiplier != nil && r.OvertimeRateMultiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate_multiplier", Message: "overtime_rate_multiplier must be at least 1"})
	}
	if r.BenefitsDeduction != nil && !validator.IsNonNegative(*r.BenefitsDeduction) {
		errs = append(errs, validator.ValidationError{Field: "benefits_deduction", Message: "benefits_deduction must not be negative"})
	}
	if !validator.IsValidPayFrequency(r.PayFrequency) {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "pay_frequency must be one of weekly, biweekly, monthly"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"user_id"`
	CompanyID      int64    `json:"company_id"`
	LicenseNumber  string   `json:"license_number"`
	Specialization string   `json:"specialization"`
	CountryCode    string   `json:"country_code"`
	StateProvince  string   `json:"state_province"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	IsAvailable    bool     `json:"is_available"`
}

func ToResponse(s *Staff) Response {
	return Response{
		ID:             s.ID,
		UserID:         s.UserID,
		CompanyID:      s.CompanyID,
		LicenseNumber:  s.LicenseNumber,
		Specialization: s.Specialization,
		CountryCode:    s.CountryCode,
		StateProvince:  s.StateProvince,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		IsAvailable:    s.IsAvailable,
	}
}
