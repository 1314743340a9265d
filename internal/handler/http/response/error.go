package response

import (
	"errors"
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/auth"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/dayrange"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, person.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, person.ErrHRAccessRequired),
		errors.Is(err, person.ErrLeaderAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrCannotMarkOthers):
		Forbidden(w, "Cannot mark attendance for another person")
	case errors.Is(err, attendance.ErrMissingYearOrMonth):
		BadRequest(w, "Year and month are required", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidTaskStatus):
		BadRequest(w, "Invalid task status", nil)
	case errors.Is(err, task.ErrAlreadyAllocated):
		Conflict(w, "Labourer already allocated to this task")
	case errors.Is(err, task.ErrAllocationNotFound):
		NotFound(w, "Allocation not found")
	case errors.Is(err, task.ErrNotTaskLeader):
		Forbidden(w, "Task belongs to another leader")

	// Allocation domain errors
	case errors.Is(err, allocation.ErrSnapshotNotFound):
		NotFound(w, "Snapshot not found for this day")
	case errors.Is(err, allocation.ErrEmptyAllocations):
		BadRequest(w, "Leader allocations must be a non-empty list", nil)

	// Date handling
	case errors.Is(err, dayrange.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
