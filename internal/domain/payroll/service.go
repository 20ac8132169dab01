package payroll

import "context"

type Service interface {
	Process(ctx context.Context, req ProcessRequest) (*Payroll, error)
	BulkProcess(ctx context.Context, req BulkProcessRequest) (*BulkProcessResponse, error)
	GetByID(ctx context.Context, id int64) (*Payroll, error)
	List(ctx context.Context, filter ListFilter) ([]Payroll, error)
	Approve(ctx context.Context, id int64) (*Payroll, error)
	MarkPaid(ctx context.Context, id int64) (*Payroll, error)
}
