package availability

import "errors"

var (
	ErrTypeNotFound = errors.New("Availability type not found")
)
