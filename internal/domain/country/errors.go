package country

import "errors"

var (
	ErrCountryNotFound     = errors.New("country not found")
	ErrCountryCodeExists   = errors.New("country code already exists")
	ErrCountryDeactivated  = errors.New("country is deactivated")
	ErrCountryHasCompanies = errors.New("country has registered companies and cannot be removed")
)
