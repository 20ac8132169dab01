package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyDeactivated = errors.New("company is deactivated")
	ErrCompanyNameExists  = errors.New("company name already exists in this country")
)
