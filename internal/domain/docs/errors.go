package docs

import "errors"

var (
	ErrAPIKeyNotFound = errors.New("api key not found")
	ErrAPIKeyRevoked  = errors.New("api key has been revoked")
	ErrPageNotFound   = errors.New("documentation page not found")
)
