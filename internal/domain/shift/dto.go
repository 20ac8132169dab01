package shift

import (
	"time"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StaffID        int64  `json:"staff_id"`
	RequestID      *int64 `json:"request_id,omitempty"`
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
	Notes          string `json:"notes,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	start, startValid := validator.IsValidDateTime(r.ScheduledStart)
	if !startValid {
		errs = append(errs, validator.ValidationError{Field: "scheduled_start", Message: "scheduled_start must be RFC3339"})
	}
	end, endValid := validator.IsValidDateTime(r.ScheduledEnd)
	if !endValid {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "scheduled_end must be RFC3339"})
	}
	if startValid && endValid && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "scheduled_end must be after scheduled_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             int64      `json:"id"`
	StaffID        int64      `json:"staff_id"`
	RequestID      *int64     `json:"request_id,omitempty"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ScheduledEnd   time.Time  `json:"scheduled_end"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	ActualEnd      *time.Time `json:"actual_end,omitempty"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
}

func ToResponse(s *Shift) Response {
	return Response{
		ID:             s.ID,
		StaffID:        s.StaffID,
		RequestID:      s.RequestID,
		ScheduledStart: s.ScheduledStart,
		ScheduledEnd:   s.ScheduledEnd,
		ActualStart:    s.ActualStart,
		ActualEnd:      s.ActualEnd,
		Status:         s.Status,
		Notes:          s.Notes,
	}
}
