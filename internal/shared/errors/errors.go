package errors

import "errors"

// Domain errors
var (
	// Fetch errors
	ErrInvalidURL        = errors.New("invalid URL")
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	ErrHTTPStatus        = errors.New("unexpected HTTP status")
	ErrTimeout           = errors.New("request timed out")
	ErrTransport         = errors.New("transport failure")
	ErrEmptyResource     = errors.New("resource is empty")

	// Integrity errors
	ErrInvalidIntegrity     = errors.New("invalid integrity value")
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// Input errors
	ErrMarkupUnreadable = errors.New("markup document cannot be read")
	ErrConfigNotFound   = errors.New("CDN configuration not found")
	ErrInvalidConfig    = errors.New("invalid CDN configuration")
	ErrMissingRequired  = errors.New("missing required field")
)
