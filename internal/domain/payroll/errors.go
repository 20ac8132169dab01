package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll not found")
	ErrStaffNotFound        = errors.New("staff not found")
	ErrUserNotFound         = errors.New("staff user not found")
	ErrMissingLinkage       = errors.New("staff user has no company or country linkage")
	ErrCountryNotFound      = errors.New("country not found")
	ErrSalaryConfigNotFound = errors.New("no active salary configuration for staff")
	ErrNotPending           = errors.New("payroll is not pending")
	ErrNotApproved          = errors.New("payroll is not approved")
)
