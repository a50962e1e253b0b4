package request

import "errors"

var (
	ErrRequestNotFound = errors.New("Availability request not found")
	ErrInvalidRange    = errors.New("End must be after start")
	ErrAlreadyDecided  = errors.New("Request already decided")
)
