package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRateLimited = NewError("RATE_LIMITED",
		"You have sent several inquiries recently. Please wait a while before trying again.",
		http.StatusTooManyRequests)
	ErrMissingField = NewError("MISSING_FIELD",
		"Please fill in all required fields.",
		http.StatusBadRequest)
	ErrInvalidEmail = NewError("INVALID_EMAIL",
		"Please provide a valid email address.",
		http.StatusBadRequest)
	ErrValidation = NewError("VALIDATION_ERROR",
		"We could not read your submission. Please check the form and try again.",
		http.StatusBadRequest)
	ErrNotConfigured = NewError("NOT_CONFIGURED",
		"We could not send your inquiry right now. Please reach us directly on WhatsApp.",
		http.StatusInternalServerError)
	ErrProvider = NewError("PROVIDER_ERROR",
		"We could not send your inquiry right now. Please reach us directly on WhatsApp.",
		http.StatusInternalServerError)
	ErrInternal = NewError("INTERNAL_ERROR",
		"Something went wrong on our side. Please try again later.",
		http.StatusInternalServerError)
)

type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]interface{}
	Cause   error
}

func NewError(code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
		Details: make(map[string]interface{}),
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match wrapped copies against the package sentinels by code.
func (e *Error) Is(target error) bool {
	var appErr *Error
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

func (e *Error) WithCause(cause error) *Error {
	err := *e
	err.Cause = cause
	return &err
}

// WithMessage replaces the user-facing message while keeping code and status.
func (e *Error) WithMessage(message string) *Error {
	err := *e
	err.Message = message
	return &err
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	err := *e
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	err.Details = details
	return &err
}

func Wrap(err error, appErr *Error) *Error {
	if err == nil {
		return nil
	}
	return appErr.WithCause(err)
}

func IsRateLimited(err error) bool   { return hasCode(err, ErrRateLimited.Code) }
func IsNotConfigured(err error) bool { return hasCode(err, ErrNotConfigured.Code) }
func IsProvider(err error) bool      { return hasCode(err, ErrProvider.Code) }

func IsValidation(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status == http.StatusBadRequest
	}
	return false
}

func hasCode(err error, code string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func ToHTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ToErrorResponse builds the client-facing body. The cause is never included:
// it may carry provider detail that must stay in the logs.
func ToErrorResponse(err error) map[string]interface{} {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal.WithCause(err)
	}

	response := map[string]interface{}{
		"error":      appErr.Message,
		"error_code": appErr.Code,
	}

	if len(appErr.Details) > 0 {
		response["details"] = appErr.Details
	}

	return response
}
