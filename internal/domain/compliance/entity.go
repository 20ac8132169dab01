package compliance

import "time"

const (
	StatusValid    = "valid"
	StatusExpiring = "expiring"
	StatusExpired  = "expired"
)

// Document is a staff compliance record (license, certification,
// background check) with an expiry date tracked by a daily sweep.
type Document struct {
	ID           int64      `json:"id"`
	StaffID      int64      `json:"staff_id"`
	DocumentType string     `json:"document_type"`
	Title        string     `json:"title"`
	FilePath     string     `json:"file_path"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
