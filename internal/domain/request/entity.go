package request

import "time"

// Service request lifecycle.
const (
	StatusOpen       = "open"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ServiceRequest is a patient's ask for care during a time window.
type ServiceRequest struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	CompanyID      int64     `json:"company_id"`
	ServiceType    string    `json:"service_type"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	RequiredSkills string    `json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Assignment links a staff member to a service request.
type Assignment struct {
	ID         int64      `json:"id"`
	RequestID  int64      `json:"request_id"`
	StaffID    int64      `json:"staff_id"`
	AssignedBy int64      `json:"assigned_by"`
	AssignedAt time.Time  `json:"assigned_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	Notes      string     `json:"notes"`
}
