package invoice

import "context"

type Service interface {
	Create(ctx context.Context, companyID int64, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Invoice, error)
	ListByCompany(ctx context.Context, companyID int64, status string) ([]Invoice, error)
	Issue(ctx context.Context, id int64) (Response, error)
	MarkPaid(ctx context.Context, id int64) (Response, error)
	Void(ctx context.Context, id int64) (Response, error)
}
