package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice, items []LineItem) error
	GetByID(ctx context.Context, id int64) (*Invoice, []LineItem, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Invoice, error)
	ListByCompany(ctx context.Context, companyID int64, status string) ([]Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	NextNumber(ctx context.Context, companyID int64) (int64, error)
}
