package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes shared by the stores, the HTTP clients and the API layer
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("resource conflict")
	ErrInternal         = errors.New("internal server error")
	ErrTemporaryFailure = errors.New("temporary failure")
	ErrTimeout          = errors.New("timeout")
	ErrCircuitOpen      = errors.New("circuit open")
	ErrDownstream       = errors.New("downstream rejected request")
)

// AppError carries an error class together with the response status it maps
// to and whether a retry may succeed.
type AppError struct {
	Err        error
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, statusCode int, retryable bool) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  retryable,
	}
}

// IsRetryable reports whether err is worth another attempt
func IsRetryable(err error) bool {
	var appErr *AppError

	if errors.As(err, &appErr) {
		return appErr.Retryable
	}

	return errors.Is(err, ErrTemporaryFailure) || errors.Is(err, ErrTimeout)
}

// StatusCode returns the HTTP status carried by err. Plain errors wrapping
// one of the classes above map by class, anything else is a 500.
func StatusCode(err error) int {
	var appErr *AppError

	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func NewInternalError(message string) *AppError {
	return NewAppError(ErrInternal, message, http.StatusInternalServerError, false)
}

func NewTemporaryError(message string) *AppError {
	return NewAppError(ErrTemporaryFailure, message, http.StatusServiceUnavailable, true)
}

func NewTimeoutError(message string) *AppError {
	return NewAppError(ErrTimeout, message, http.StatusGatewayTimeout, true)
}

// NewCircuitOpenError signals that a downstream call was short-circuited
func NewCircuitOpenError(message string) *AppError {
	return NewAppError(ErrCircuitOpen, message, http.StatusServiceUnavailable, false)
}

// NewDownstreamError reports a response status the caller does not accept.
// It is never retried.
func NewDownstreamError(service string, status int) *AppError {
	return NewAppError(ErrDownstream, fmt.Sprintf("%s service returned status %d", service, status), http.StatusBadGateway, false)
}
