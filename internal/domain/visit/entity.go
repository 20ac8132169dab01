package visit

import "time"

// Visit is a completed care session between staff and patient,
// recorded after a service request finishes.
type Visit struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	StaffID   int64     `json:"staff_id"`
	PatientID int64     `json:"patient_id"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is a patient's rating of a visit, 1 to 5.
type Feedback struct {
	ID        int64     `json:"id"`
	VisitID   int64     `json:"visit_id"`
	PatientID int64     `json:"patient_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
