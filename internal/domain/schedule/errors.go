package schedule

import "errors"

var (
	ErrInvalidTimeRange = errors.New("Block end must be after start")
	ErrInvalidDate      = errors.New("Invalid schedule date")
)
