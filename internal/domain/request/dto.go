package request

import (
	"time"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	PatientID      int64  `json:"patient_id"`
	ServiceType    string `json:"service_type"`
	Description    string `json:"description,omitempty"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RequiredSkills string `json:"required_skills,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PatientID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "patient_id", Message: "patient_id is required"})
	}
	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{Field: "service_type", Message: "service_type is required"})
	}
	start, startValid := validator.IsValidDateTime(r.StartTime)
	if !startValid {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be RFC3339"})
	}
	end, endValid := validator.IsValidDateTime(r.EndTime)
	if !endValid {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be RFC3339"})
	}
	if startValid && endValid && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRequest struct {
	StaffID int64  `json:"staff_id"`
	Notes   string `json:"notes,omitempty"`
}

func (r *AssignRequest) Validate() error {
	if r.StaffID <= 0 {
		return validator.ValidationErrors{{Field: "staff_id", Message: "staff_id is required"}}
	}
	return nil
}

type Response struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	CompanyID      int64     `json:"company_id"`
	ServiceType    string    `json:"service_type"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	RequiredSkills string    `json:"required_skills"`
}

func ToResponse(sr *ServiceRequest) Response {
	return Response{
		ID:             sr.ID,
		PatientID:      sr.PatientID,
		CompanyID:      sr.CompanyID,
		ServiceType:    sr.ServiceType,
		Description:    sr.Description,
		StartTime:      sr.StartTime,
		EndTime:        sr.EndTime,
		Status:         sr.Status,
		RequiredSkills: sr.RequiredSkills,
	}
}

// MatchCandidate is a staff member ranked by distance to the patient.
type MatchCandidate struct {
	StaffID        int64   `json:"staff_id"`
	Specialization string  `json:"specialization"`
	DistanceMeters float64 `json:"distance_meters"`
}
