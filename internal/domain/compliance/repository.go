package compliance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id int64) (*Document, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Document, error)
	// ListExpiringBefore returns valid documents whose expiry falls before
	// the cutoff, for the status sweep.
	ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]Document, error)
	Update(ctx context.Context, d *Document) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}
