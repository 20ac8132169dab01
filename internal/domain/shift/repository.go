package shift

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Shift) error
	GetByID(ctx context.Context, id int64) (*Shift, error)
	ListByStaff(ctx context.Context, staffID int64, from, to time.Time) ([]Shift, error)
	FindOverlapping(ctx context.Context, staffID int64, start, end time.Time) ([]Shift, error)
	Update(ctx context.Context, s *Shift) error
}
