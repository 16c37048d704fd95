package fetch

import (
	"errors"
	"fmt"
	"time"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
)

// InvalidURLError reports input that is not an absolute URL with a host.
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %s", e.URL, e.Reason)
}

func (e *InvalidURLError) Unwrap() error { return sharederrors.ErrInvalidURL }

// UnsupportedSchemeError reports a URL whose scheme is neither http nor https.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported scheme %q (only http and https are allowed)", e.Scheme)
}

func (e *UnsupportedSchemeError) Unwrap() error { return sharederrors.ErrUnsupportedScheme }

// HTTPStatusError is returned for any response other than 200 OK.
type HTTPStatusError struct {
	URL  string
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Code)
}

func (e *HTTPStatusError) Unwrap() error { return sharederrors.ErrHTTPStatus }

// TimeoutError is returned when the overall request deadline elapses.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GET %s: timed out after %s", e.URL, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return sharederrors.ErrTimeout }

// TransportError wraps connection-level failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{sharederrors.ErrTransport, e.Err} }

// Hints returns operator remediation steps for a fetch failure.
func Hints(err error) []string {
	var (
		invalid *InvalidURLError
		scheme  *UnsupportedSchemeError
		status  *HTTPStatusError
	)

	switch {
	case errors.As(err, &invalid):
		return []string{"Pass an absolute URL such as https://cdn.example.com/lib.js"}
	case errors.As(err, &scheme):
		return []string{"Use an http:// or https:// URL"}
	case errors.As(err, &status):
		return []string{
			"Check that the URL is correct",
			fmt.Sprintf("The CDN answered with HTTP %d; confirm the resource still exists", status.Code),
		}
	case errors.Is(err, sharederrors.ErrEmptyResource):
		return []string{"The CDN returned an empty body; an empty resource cannot be pinned with SRI"}
	case errors.Is(err, sharederrors.ErrTimeout), errors.Is(err, sharederrors.ErrTransport):
		return []string{
			"Check that the URL is correct",
			"Check your internet connection",
			"Check that the CDN is up",
		}
	}
	return nil
}
