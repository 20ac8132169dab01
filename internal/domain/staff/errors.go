package staff

import "errors"

var (
	ErrStaffNotFound        = errors.New("staff not found")
	ErrStaffExistsForUser   = errors.New("staff profile already exists for this user")
	ErrSalaryConfigNotFound = errors.New("salary configuration not found")
	ErrStaffUnavailable     = errors.New("staff is not available")
)
