package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid transport configuration
	ErrInvalidConfig = errors.New("invalid instantly configuration")
	// ErrClosed is returned for calls made after Close
	ErrClosed = errors.New("instantly client is closed")
)

// HTTPError is returned for any response outside the 2xx range.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("instantly API error: %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("instantly API error: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the server rejected the call with 429
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// RequestError wraps failures below HTTP: DNS, refused connections,
// timeouts and cancelled contexts.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("instantly request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because a deadline expired.
func (e *RequestError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// AsHTTPError returns the HTTPError in err's chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
