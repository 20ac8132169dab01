package visit

import (
	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	RequestID int64  `json:"request_id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
	Summary   string `json:"summary,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RequestID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "request_id is required"})
	}
	start, startValid := validator.IsValidDateTime(r.StartedAt)
	if !startValid {
		errs = append(errs, validator.ValidationError{Field: "started_at", Message: "started_at must be RFC3339"})
	}
	end, endValid := validator.IsValidDateTime(r.EndedAt)
	if !endValid {
		errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "ended_at must be RFC3339"})
	}
	if startValid && endValid && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "ended_at", Message: "ended_at must be after started_at"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (r *FeedbackRequest) Validate() error {
	if !validator.IsValidRating(r.Rating) {
		return validator.ValidationErrors{{Field: "rating", Message: "rating must be between 1 and 5"}}
	}
	return nil
}
