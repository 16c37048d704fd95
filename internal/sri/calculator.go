package sri

import (
	"context"

	"github.com/khanhnv2901/sri-cli/internal/fetch"
)

// Fetcher retrieves the raw bytes of a resource.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Calculator fetches a resource and digests it.
type Calculator struct {
	Fetcher Fetcher
}

// NewCalculator returns a Calculator backed by the default HTTP fetcher.
func NewCalculator() *Calculator {
	return &Calculator{Fetcher: fetch.New()}
}

// Calculate fetches rawURL and computes its digests. Any failure aborts the
// whole operation; no partial Result is returned.
func (c *Calculator) Calculate(ctx context.Context, rawURL string) (*Result, error) {
	body, err := c.fetcher().Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return Compute(rawURL, body)
}

// Verify fetches rawURL and reports whether its body satisfies integrity.
// The computed Result is returned so callers can show the current digest.
func (c *Calculator) Verify(ctx context.Context, rawURL, integrity string) (*Result, bool, error) {
	if _, err := ParseIntegrity(integrity); err != nil {
		return nil, false, err
	}

	body, err := c.fetcher().Fetch(ctx, rawURL)
	if err != nil {
		return nil, false, err
	}

	result, err := Compute(rawURL, body)
	if err != nil {
		return nil, false, err
	}

	ok, err := Matches(integrity, body)
	if err != nil {
		return result, false, err
	}
	return result, ok, nil
}

func (c *Calculator) fetcher() Fetcher {
	if c.Fetcher == nil {
		return fetch.New()
	}
	return c.Fetcher
}
