package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientExistsForUser = errors.New("patient profile already exists for this user")
	ErrPatientInactive      = errors.New("patient is inactive")
)
