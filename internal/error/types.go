package error

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeTimeout    ErrorType = "timeout_error"
	ErrorTypeLLM        ErrorType = "llm_error"
	ErrorTypeSearch     ErrorType = "search_error"
	ErrorTypeTool       ErrorType = "tool_error"
	ErrorTypeInternal   ErrorType = "internal_error"
	ErrorTypeNotFound   ErrorType = "not_found"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Err        error     `json:"-"`
}

// ------------------------------------------------------------------------------------------------------
// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ------------------------------------------------------------------------------------------------------
// Unwrap exposes the wrapped error for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// ------------------------------------------------------------------------------------------------------
// NewValidationError creates a validation error
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewTimeoutError creates a timeout error
func NewTimeoutError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    message,
		StatusCode: http.StatusGatewayTimeout,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewLLMError creates an error for failures talking to the model runtime
func NewLLMError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeLLM,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewSearchError creates an error for failures talking to the search provider
func NewSearchError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeSearch,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewToolError creates an error for a failed tool invocation
func NewToolError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeTool,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// ------------------------------------------------------------------------------------------------------
// GetHTTPStatusCode returns the appropriate HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	// Default to internal server error
	return http.StatusInternalServerError
}

// ------------------------------------------------------------------------------------------------------
// ErrorResponse represents the JSON error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ------------------------------------------------------------------------------------------------------
// ErrorDetail contains error details
type ErrorDetail struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
}

// ------------------------------------------------------------------------------------------------------
// NewErrorResponse creates a standardized error response
func NewErrorResponse(err error) ErrorResponse {
	var appErr *AppError

	if errors.As(err, &appErr) {
		return ErrorResponse{
			Error: ErrorDetail{
				Type:    appErr.Type,
				Message: appErr.Message,
				Code:    string(appErr.Type),
			},
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Type:    ErrorTypeInternal,
			Message: err.Error(),
			Code:    string(ErrorTypeInternal),
		},
	}
}
