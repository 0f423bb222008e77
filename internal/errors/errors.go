// Package errors provides custom error types for the chat backend client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoContent       = errors.New("no content in response")
)

// GenericReason is the failure reason shown to the user when the server
// supplied no detail of its own.
const GenericReason = "request failed"

// APIError represents a non-success response from the chat backend.
type APIError struct {
	StatusCode int
	Endpoint   string
	// Detail is the server-supplied failure reason, when present.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("chat API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Detail)
	}
	return fmt.Sprintf("chat API error [%d] at %s", e.StatusCode, e.Endpoint)
}

// Is allows comparison with other APIErrors regardless of fields.
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, endpoint, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Detail:     detail,
	}
}

// RequestError represents a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS, timeout).
type RequestError struct {
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a new RequestError.
func NewRequestError(endpoint string, err error) *RequestError {
	return &RequestError{Endpoint: endpoint, Err: err}
}

// ParseError represents a response body that could not be interpreted.
type ParseError struct {
	Message  string
	Endpoint string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel.
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(message, endpoint string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint}
}

// GetHTTPStatus extracts the HTTP status code from an error, or 0.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetDetail extracts the server-supplied failure detail from an error, or "".
func GetDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// GetEndpoint extracts the endpoint an error occurred against, or "".
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Endpoint
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Endpoint
	}
	return ""
}

// IsRequestError reports whether the error is a transport-level failure.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// FailureReason returns the user-facing reason for a failed send.
// The server-supplied detail field wins; transport errors describe
// themselves; anything else collapses to a generic description.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	if detail := GetDetail(err); detail != "" {
		return detail
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("server returned status %d", apiErr.StatusCode)
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return GenericReason
	}
	return GenericReason
}
