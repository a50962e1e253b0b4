package response

import (
	"errors"
	"net/http"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/auth"
	"github.com/availboard/availboard-backend-go/internal/domain/availability"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrUnknownAccount):
		NotFound(w, "No employee account for this identity")

	// Access
	case errors.Is(err, access.ErrForbidden):
		Forbidden(w, "Not allowed to act on this employee")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, availability.ErrTypeNotFound):
		NotFound(w, "Availability type not found")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Availability request not found")
	case errors.Is(err, request.ErrInvalidRange):
		ValidationError(w, map[string]string{"range": "End must be after start"})
	case errors.Is(err, request.ErrAlreadyDecided):
		Conflict(w, "Request already decided")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrInvalidDate):
		ValidationError(w, map[string]string{"date": "Date must be yyyy-mm-dd"})
	case errors.Is(err, schedule.ErrInvalidTimeRange):
		ValidationError(w, map[string]string{"blocks": "Block end must be after start"})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
