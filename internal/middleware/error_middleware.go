package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers call
// it with any error bubbling up from the service layer.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	field := ""
	message := err.Error()
	if errors.As(err, &customErr) {
		field = customErr.Field
	}

	respond := func(status int, code dto.ErrorCode) {
		errorDetail := dto.NewErrorDetail(code, message)
		if field != "" {
			errorDetail = errorDetail.WithField(field)
		}
		c.JSON(status, dto.NewErrorResponse(errorDetail))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken)
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken)
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound)
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrNotSupervisor):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrPromotionNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrInternshipNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound)

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrHandleExists),
		errors.Is(err, apperrors.ErrFacultyAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentExists),
		errors.Is(err, apperrors.ErrPromotionExists),
		errors.Is(err, apperrors.ErrMatriculeExists),
		errors.Is(err, apperrors.ErrEnrollmentIDExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists)

	case errors.Is(err, apperrors.ErrFacultyHasDepartments),
		errors.Is(err, apperrors.ErrDepartmentHasRelations):
		respond(http.StatusConflict, dto.ErrorCodeResourceConflict)

	case errors.Is(err, apperrors.ErrInvalidStatusForAction):
		respond(http.StatusConflict, dto.ErrorCodeInvalidStatus)

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrIdenticalProposals),
		errors.Is(err, apperrors.ErrCompanyNotProposed),
		errors.Is(err, apperrors.ErrGradeOutOfRange):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}

// HandleBindingError reports a malformed request body.
func HandleBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
