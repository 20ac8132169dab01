package payroll

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	GetByID(ctx context.Context, id int64) (*Payroll, error)
	List(ctx context.Context, filter ListFilter) ([]Payroll, error)
	UpdateStatus(ctx context.Context, id int64, status string, at time.Time) error
	// SumGrossPayForYear sums gross pay over this staff member's payrolls
	// whose pay period starts in the same calendar year as, and strictly
	// before, the given date. Used for YTD contribution caps.
	SumGrossPayForYear(ctx context.Context, staffID int64, before time.Time) (string, error)
}
