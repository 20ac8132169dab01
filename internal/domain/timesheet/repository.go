package timesheet

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Timesheet) error
	GetByID(ctx context.Context, id int64) (*Timesheet, error)
	ListByStaff(ctx context.Context, staffID int64) ([]Timesheet, error)
	// FindVerifiedInPeriod returns the verified timesheet covering exactly
	// the given pay period, if one exists.
	FindVerifiedInPeriod(ctx context.Context, staffID int64, periodStart, periodEnd time.Time) (*Timesheet, error)
	Update(ctx context.Context, t *Timesheet) error
}
