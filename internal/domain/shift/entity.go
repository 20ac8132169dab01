package shift

import "time"

const (
	StatusScheduled = "scheduled"
	StatusStarted   = "started"
	StatusEnded     = "ended"
	StatusVerified  = "verified"
)

// Shift is a concrete working window for a staff member, usually tied
// to a service request assignment.
type Shift struct {
	ID             int64      `json:"id"`
	StaffID        int64      `json:"staff_id"`
	RequestID      *int64     `json:"request_id,omitempty"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ScheduledEnd   time.Time  `json:"scheduled_end"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	ActualEnd      *time.Time `json:"actual_end,omitempty"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
