package patient

import "time"

type Patient struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	CompanyID        int64      `json:"company_id"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Address          string     `json:"address"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	MedicalNotes     string     `json:"medical_notes"`
	EmergencyContact string     `json:"emergency_contact"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
