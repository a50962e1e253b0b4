package access

import "errors"

var (
	ErrForbidden = errors.New("Not allowed to act on this employee")
)
