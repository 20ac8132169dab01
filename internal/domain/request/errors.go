package request

import "errors"

var (
	ErrRequestNotFound      = errors.New("service request not found")
	ErrRequestNotOpen       = errors.New("service request is not open for assignment")
	ErrRequestNotAssigned   = errors.New("service request has no active assignment")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAlreadyAssigned      = errors.New("service request is already assigned")
	ErrNoLocationForPatient = errors.New("patient has no location set for matching")
	ErrNoCandidates         = errors.New("no available staff match this request")
	ErrInvalidTransition    = errors.New("invalid status transition")
)
