package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrBadRequest            = errors.New("bad request")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// Account errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrHandleExists   = errors.New("username already exists")
	ErrMissingProfile = errors.New("profile record missing for account")
)

// Directory errors
var (
	ErrFacultyNotFound        = errors.New("faculty not found")
	ErrFacultyAlreadyExists   = errors.New("faculty with this name or code already exists")
	ErrFacultyHasDepartments  = errors.New("faculty has associated departments and cannot be deleted")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentExists       = errors.New("department with this code already exists")
	ErrDepartmentHasRelations = errors.New("department has associated data and cannot be deleted")
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrPromotionExists        = errors.New("promotion already exists for this department and academic year")
)

// Identity errors
var (
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrMatriculeExists    = errors.New("matricule already exists")
	ErrEnrollmentIDExists = errors.New("enrollment ID already in use for this promotion and academic year")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)

// Internship errors
var (
	ErrInternshipNotFound     = errors.New("internship not found")
	ErrIdenticalProposals     = errors.New("first and second proposed companies must differ")
	ErrCompanyNotProposed     = errors.New("selected company is not among the student's proposals")
	ErrInvalidStatusForAction = errors.New("internship status does not allow this operation")
	ErrGradeOutOfRange        = errors.New("grade must be between 0 and 100")
	ErrNotSupervisor          = errors.New("only the assigned supervisor may grade this internship")
)

// CustomError carries extra context alongside a sentinel error.
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message, Field: field}
}

// NewNotFoundError creates a resource-not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
