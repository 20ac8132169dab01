package compliance

import "errors"

var (
	ErrDocumentNotFound = errors.New("compliance document not found")
	ErrNoFileAttached   = errors.New("compliance document has no file attached")
)
