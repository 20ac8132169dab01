package company

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	List(ctx context.Context, countryID *int64) ([]Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Response, error)
	Deactivate(ctx context.Context, id int64) error
}
