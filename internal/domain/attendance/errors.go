package attendance

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrCannotMarkOthers   = errors.New("cannot mark attendance for another person")
	ErrMissingYearOrMonth = errors.New("year and month are required")
)
