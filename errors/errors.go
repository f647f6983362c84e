package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Student errors
	ErrCodeStudentNotFound  ErrorCode = "STUDENT_NOT_FOUND"
	ErrCodeStudentExists    ErrorCode = "STUDENT_EXISTS"
	ErrCodeStudentAllocated ErrorCode = "STUDENT_ALLOCATED"
	ErrCodeInvalidStudentID ErrorCode = "INVALID_STUDENT_ID"

	// Hostel / allocation errors
	ErrCodeHostelNotFound   ErrorCode = "HOSTEL_NOT_FOUND"
	ErrCodeHostelExists     ErrorCode = "HOSTEL_EXISTS"
	ErrCodeHostelOccupied   ErrorCode = "HOSTEL_OCCUPIED"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomNotAvailable ErrorCode = "ROOM_NOT_AVAILABLE"
	ErrCodeRoomOccupied     ErrorCode = "ROOM_OCCUPIED"
	ErrCodeGenderMismatch   ErrorCode = "GENDER_MISMATCH"
	ErrCodeNoAllocation     ErrorCode = "NO_ALLOCATION"

	// Fee / exam errors
	ErrCodeFeeNotFound    ErrorCode = "FEE_NOT_FOUND"
	ErrCodeFeeAlreadyPaid ErrorCode = "FEE_ALREADY_PAID"
	ErrCodeExamNotFound   ErrorCode = "EXAM_NOT_FOUND"
	ErrCodeResultExists   ErrorCode = "RESULT_EXISTS"
	ErrCodeInvalidMarks   ErrorCode = "INVALID_MARKS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError carries a code, a human-readable message and the wrapped cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUserInactive      = errors.New("user account is inactive")
	ErrUnauthorized      = errors.New("unauthorized")

	// Student errors
	ErrStudentNotFound  = errors.New("student not found")
	ErrStudentExists    = errors.New("student already exists")
	ErrStudentAllocated = errors.New("student already has a room allocated")

	// Hostel / room errors
	ErrHostelNotFound   = errors.New("hostel not found")
	ErrHostelOccupied   = errors.New("hostel has occupied rooms")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")
	ErrRoomOccupied     = errors.New("room is occupied")
	ErrGenderMismatch   = errors.New("student gender does not match hostel type")
	ErrNoAllocation     = errors.New("student has no room allocated")

	// Fee errors
	ErrFeeNotFound    = errors.New("fee record not found")
	ErrFeeAlreadyPaid = errors.New("fee already paid")

	// Exam errors
	ErrExamNotFound = errors.New("exam not found")
	ErrResultExists = errors.New("result already recorded for this student")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
