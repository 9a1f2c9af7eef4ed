package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_VALIDATION_FAILED ErrorCode = 1003

	ErrorCode_MISSING_TRANSCRIPT          ErrorCode = 2000
	ErrorCode_SCORING_FAILED              ErrorCode = 2001
	ErrorCode_INTEGRATION_EXTERNAL_FAILED ErrorCode = 2002
)

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_VALIDATION_FAILED:
		return "VALIDATION_FAILED"
	case ErrorCode_MISSING_TRANSCRIPT:
		return "MISSING_TRANSCRIPT"
	case ErrorCode_SCORING_FAILED:
		return "SCORING_FAILED"
	case ErrorCode_INTEGRATION_EXTERNAL_FAILED:
		return "INTEGRATION_EXTERNAL_FAILED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(c))
	}
}

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrValidationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_FAILED,
		Message:  "Request validation failed",
	}
}

// Scoring Errors
func ErrMissingTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_TRANSCRIPT,
		Message:  "Missing transcript",
	}
}

func ErrScoringFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SCORING_FAILED,
		Message:  "Scoring failed",
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_EXTERNAL_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}
