package visit

import "errors"

var (
	ErrVisitNotFound      = errors.New("visit not found")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrFeedbackExists     = errors.New("feedback already submitted for this visit")
	ErrNotVisitPatient    = errors.New("feedback can only be left by the visited patient")
	ErrRequestNotFinished = errors.New("service request is not completed")
)
