package patient

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	GetByUserID(ctx context.Context, userID int64) (Response, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Response, error)
}
