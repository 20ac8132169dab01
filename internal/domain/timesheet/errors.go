package timesheet

import "errors"

var (
	ErrTimesheetNotFound     = errors.New("timesheet not found")
	ErrTimesheetNotSubmitted = errors.New("timesheet has not been submitted")
	ErrTimesheetNotVerified  = errors.New("timesheet is not verified")
	ErrTimesheetLocked       = errors.New("timesheet is verified and can no longer be changed")
	ErrNotTimesheetOwner     = errors.New("timesheet belongs to another staff member")
)
