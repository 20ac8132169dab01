package compliance

import (
	"context"
	"io"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Response, error)
	AttachFile(ctx context.Context, id int64, filename string, content io.Reader) (Response, error)
	ReadFile(ctx context.Context, id int64) ([]byte, string, error)
	// SweepExpiry re-evaluates document statuses against today's date and
	// returns how many documents changed status. Run daily by the scheduler.
	SweepExpiry(ctx context.Context) (int, error)
}
