package request

import "context"

type Service interface {
	Create(ctx context.Context, companyID int64, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByCompany(ctx context.Context, companyID int64, status string) ([]Response, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Response, error)
	Cancel(ctx context.Context, id int64) error

	Assign(ctx context.Context, requestID, assignedBy int64, req AssignRequest) (*Assignment, error)
	// FindMatches ranks available staff by haversine distance to the patient.
	FindMatches(ctx context.Context, requestID int64, limit int) ([]MatchCandidate, error)
	Accept(ctx context.Context, requestID, staffID int64) error
	Start(ctx context.Context, requestID, staffID int64) error
	Complete(ctx context.Context, requestID, staffID int64) error
}
