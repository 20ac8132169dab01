package compliance

import (
	"time"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StaffID      int64  `json:"staff_id"`
	DocumentType string `json:"document_type"`
	Title        string `json:"title"`
	IssuedAt     string `json:"issued_at,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if validator.IsEmpty(r.DocumentType) {
		errs = append(errs, validator.ValidationError{Field: "document_type", Message: "document_type is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if _, valid := validator.IsValidDate(r.IssuedAt); r.IssuedAt != "" && !valid {
		errs = append(errs, validator.ValidationError{Field: "issued_at", Message: "issued_at must be YYYY-MM-DD"})
	}
	if _, valid := validator.IsValidDate(r.ExpiresAt); r.ExpiresAt != "" && !valid {
		errs = append(errs, validator.ValidationError{Field: "expires_at", Message: "expires_at must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (r *CreateRequest) IssuedAtTime() *time.Time  { return parseDatePtr(r.IssuedAt) }
func (r *CreateRequest) ExpiresAtTime() *time.Time { return parseDatePtr(r.ExpiresAt) }

type Response struct {
	ID           int64      `json:"id"`
	StaffID      int64      `json:"staff_id"`
	DocumentType string     `json:"document_type"`
	Title        string     `json:"title"`
	FileURL      string     `json:"file_url,omitempty"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Status       string     `json:"status"`
}

func ToResponse(d *Document, fileURL string) Response {
	return Response{
		ID:           d.ID,
		StaffID:      d.StaffID,
		DocumentType: d.DocumentType,
		Title:        d.Title,
		FileURL:      fileURL,
		IssuedAt:     d.IssuedAt,
		ExpiresAt:    d.ExpiresAt,
		Status:       d.Status,
	}
}
