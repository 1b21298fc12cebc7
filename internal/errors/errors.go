package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"hrpulse/internal/report"
	"hrpulse/internal/xlsx"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	ErrInvalidRequest    = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrMissingParameter  = New(http.StatusBadRequest, "MISSING_PARAMETER", "Required parameter is missing")
	ErrNotFound          = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
	ErrInternalServer    = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// InvalidRequestWithError creates an invalid request error with details
func InvalidRequestWithError(err error) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error())
}

// UnknownReportKindError maps an unrecognized report kind to a 404
func UnknownReportKindError(kind string) *APIError {
	return NewWithDetails(http.StatusNotFound, "UNKNOWN_REPORT_KIND",
		fmt.Sprintf("unknown report kind %q", kind), kind)
}

// ReportNotIngestedError maps a read of an unloaded report to a 404
func ReportNotIngestedError(kind string) *APIError {
	return NewWithDetails(http.StatusNotFound, "REPORT_NOT_INGESTED",
		fmt.Sprintf("no %s report has been ingested yet", kind), kind)
}

// SchemaViolationError maps a workbook schema violation to a 422
func SchemaViolationError(err *report.SchemaError) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "SCHEMA_VIOLATION", err.Message, string(err.Kind))
}

// WorkbookError maps a failure to read an uploaded workbook to a 400
func WorkbookError(err error) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_WORKBOOK",
		"Uploaded file could not be read as a workbook", err.Error())
}

// FromError maps any error into an APIError, preserving the typed
// mappings for domain errors and falling back to a 500.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var schemaErr *report.SchemaError
	if errors.As(err, &schemaErr) {
		return SchemaViolationError(schemaErr)
	}
	if errors.Is(err, xlsx.ErrWorkbook) {
		return WorkbookError(err)
	}
	return NewWithDetails(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
		"Internal server error", err.Error())
}

// ErrorResponse represents a standard error response envelope
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err,
	}
}

// Render implements the render.Renderer interface
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}
