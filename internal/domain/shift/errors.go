package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrShiftNotStarted   = errors.New("shift has not been started")
	ErrShiftAlreadyEnded = errors.New("shift has already ended")
	ErrShiftNotEnded     = errors.New("shift has not ended yet")
	ErrShiftOverlaps     = errors.New("shift overlaps an existing shift for this staff")
	ErrNotShiftOwner     = errors.New("shift belongs to another staff member")
)
