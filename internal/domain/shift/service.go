package shift

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByStaff(ctx context.Context, staffID int64, from, to time.Time) ([]Response, error)
	Start(ctx context.Context, id, staffID int64) (Response, error)
	End(ctx context.Context, id, staffID int64) (Response, error)
	Verify(ctx context.Context, id int64) (Response, error)
}
