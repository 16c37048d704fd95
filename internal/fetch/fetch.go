// Package fetch downloads CDN resources for digest computation.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
)

// Fetcher performs a single GET per call. No retries are attempted.
type Fetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

// New returns a Fetcher using the default 30 second deadline.
func New() *Fetcher {
	return &Fetcher{Timeout: consts.FetchTimeout}
}

// ParseURL validates that raw is an absolute http or https URL.
func ParseURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Reason: err.Error()}
	}
	if parsed.Scheme == "" {
		return nil, &InvalidURLError{URL: raw, Reason: "missing scheme"}
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return nil, &UnsupportedSchemeError{Scheme: parsed.Scheme}
	}

	if parsed.Host == "" {
		return nil, &InvalidURLError{URL: raw, Reason: "missing host"}
	}
	return parsed, nil
}

// Fetch downloads raw and returns the exact response body bytes. The deadline
// covers the whole transfer, including reading the body.
func (f *Fetcher) Fetch(ctx context.Context, raw string) ([]byte, error) {
	parsed, err := ParseURL(raw)
	if err != nil {
		return nil, err
	}

	timeout := f.timeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, &InvalidURLError{URL: raw, Reason: err.Error()}
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, f.wrap(ctx, raw, timeout, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{URL: raw, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, f.wrap(ctx, raw, timeout, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

func (f *Fetcher) wrap(ctx context.Context, raw string, timeout time.Duration, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{URL: raw, Timeout: timeout}
	}
	return &TransportError{URL: raw, Err: err}
}

func (f *Fetcher) timeout() time.Duration {
	if f.Timeout <= 0 {
		return consts.FetchTimeout
	}
	return f.Timeout
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}
