package request

import "context"

type Repository interface {
	Create(ctx context.Context, sr *ServiceRequest) error
	GetByID(ctx context.Context, id int64) (*ServiceRequest, error)
	ListByCompany(ctx context.Context, companyID int64, status string) ([]ServiceRequest, error)
	ListByPatient(ctx context.Context, patientID int64) ([]ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByRequestID(ctx context.Context, requestID int64) (*Assignment, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Assignment, error)
	MarkAccepted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
