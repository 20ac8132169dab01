package country

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	List(ctx context.Context, activeOnly bool) ([]Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (Response, error)
	Deactivate(ctx context.Context, id int64) error
}
