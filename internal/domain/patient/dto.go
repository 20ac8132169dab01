package patient

import (
	"time"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	UserID           int64    `json:"user_id"`
	CompanyID        int64    `json:"company_id"`
	DateOfBirth      string   `json:"date_of_birth,omitempty"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	MedicalNotes     string   `json:"medical_notes,omitempty"`
	EmergencyContact string   `json:"emergency_contact,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if _, valid := validator.IsValidDate(r.DateOfBirth); r.DateOfBirth != "" && !valid {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
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

// DateOfBirthTime parses the validated date string, returning nil when unset.
func (r *CreateRequest) DateOfBirthTime() *time.Time {
	if r.DateOfBirth == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return nil
	}
	return &t
}

type UpdateRequest struct {
	Address          *string  `json:"address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	MedicalNotes     *string  `json:"medical_notes,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

type Response struct {
	ID               int64    `json:"id"`
	UserID           int64    `json:"user_id"`
	CompanyID        int64    `json:"company_id"`
	DateOfBirth      *string  `json:"date_of_birth,omitempty"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	MedicalNotes     string   `json:"medical_notes"`
	EmergencyContact string   `json:"emergency_contact"`
	IsActive         bool     `json:"is_active"`
}

func ToResponse(p *Patient) Response {
	resp := Response{
		ID:               p.ID,
		UserID:           p.UserID,
		CompanyID:        p.CompanyID,
		Address:          p.Address,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		MedicalNotes:     p.MedicalNotes,
		EmergencyContact: p.EmergencyContact,
		IsActive:         p.IsActive,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}
