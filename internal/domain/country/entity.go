package country

import "time"

// Country is a jurisdiction the platform operates in. The Code drives
// payroll tax treatment (US and CA get bracket-based federal tax,
// everything else a flat rate).
type Country struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Currency  string    `json:"currency"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
