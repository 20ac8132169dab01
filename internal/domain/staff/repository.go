package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id int64) (*Staff, error)
	GetByUserID(ctx context.Context, userID int64) (*Staff, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Staff, error)
	ListAvailable(ctx context.Context, companyID int64, specialization string) ([]Staff, error)
	Update(ctx context.Context, s *Staff) error
}

type SalaryConfigRepository interface {
	// Create deactivates any previous active config for the staff member
	// before inserting the new one.
	Create(ctx context.Context, cfg *SalaryConfig) error
	GetActiveByStaffID(ctx context.Context, staffID int64) (*SalaryConfig, error)
	ListByStaffID(ctx context.Context, staffID int64) ([]SalaryConfig, error)
}
