package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNotDraft        = errors.New("invoice is not a draft")
	ErrNotIssued       = errors.New("invoice has not been issued")
	ErrAlreadyPaid     = errors.New("invoice is already paid")
)
