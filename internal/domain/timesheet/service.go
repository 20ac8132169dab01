package timesheet

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Response, error)
	Submit(ctx context.Context, id, staffID int64) (Response, error)
	Verify(ctx context.Context, id, verifiedBy int64) (Response, error)
	Reject(ctx context.Context, id, verifiedBy int64, reason string) (Response, error)
}
