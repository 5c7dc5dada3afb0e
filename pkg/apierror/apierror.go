package apierror

import (
	"encoding/json"
	"net/http"
)

// Error is the JSON error payload returned by every failing endpoint.
// The wire shape is {"error": "...", "fields": [...]}.
type Error struct {
	Status  int          `json:"-"`
	Message string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes a validation failure for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// WithFields attaches field errors.
func (e *Error) WithFields(fields []FieldError) *Error {
	e.Fields = fields
	return e
}

// Write writes the error to the response.
func (e *Error) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(e)
}

// Common constructors

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func ValidationError(message string, fields []FieldError) *Error {
	return New(http.StatusUnprocessableEntity, message).WithFields(fields)
}

func InternalError(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

func Unavailable(message string) *Error {
	return New(http.StatusServiceUnavailable, message)
}
