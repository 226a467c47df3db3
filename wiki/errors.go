package wiki

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrRateLimited indicates the API rate limit was exceeded and retries ran out.
	ErrRateLimited = errors.New("wikipedia rate limit exceeded")

	// ErrNetwork indicates a network connectivity issue.
	ErrNetwork = errors.New("network error communicating with wikipedia")

	// ErrInvalidResponse indicates an unexpected API response shape.
	ErrInvalidResponse = errors.New("invalid response from wikipedia")
)

// APIError represents an error envelope returned by the MediaWiki API.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediawiki API error (code %s): %s", e.Code, e.Info)
}

// HTTPError represents a non-2xx HTTP response from the API endpoint.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("mediawiki HTTP error: %s", e.Status)
}

// NotFoundError indicates the requested page does not exist.
type NotFoundError struct {
	Title string
	Lang  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("page not found: %q (lang=%s)", e.Title, e.Lang)
}

// IsNotFound returns true if the error indicates a missing page.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 429
}
