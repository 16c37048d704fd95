package cdn

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
	"github.com/khanhnv2901/sri-cli/internal/sri"
)

// Status is the outcome of verifying one configured resource.
type Status string

const (
	StatusMatch    Status = "match"
	StatusMismatch Status = "mismatch"
	StatusInvalid  Status = "invalid"
	StatusError    Status = "error"
)

// VerifyResult is the live check of one configured resource.
type VerifyResult struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Expected string `json:"expected"`
	// Actual is the live integrity value using the recommended algorithm.
	Actual string `json:"actual,omitempty"`
	Status Status `json:"status"`
	Err    error  `json:"-"`
}

// OK reports whether the configured digest matches the live resource.
func (r VerifyResult) OK() bool {
	return r.Status == StatusMatch
}

// Calculator fetches a resource and compares it with an integrity value.
type Calculator interface {
	Verify(ctx context.Context, rawURL, integrity string) (*sri.Result, bool, error)
}

// Verifier checks configured digests against live resources with bounded
// concurrency and a global request rate.
type Verifier struct {
	Calculator  Calculator
	Concurrency int
	RateLimit   int
	Logger      *zap.SugaredLogger
	// OnResult, when set, is called from worker goroutines after each
	// resource completes.
	OnResult func(result VerifyResult, elapsed time.Duration)
}

// Verify checks every resource and returns one result per name in sorted
// order. A failing resource never cancels the others.
func (v *Verifier) Verify(ctx context.Context, cfg *Config) []VerifyResult {
	names := cfg.Names()
	results := make([]VerifyResult, len(names))

	limiter := rate.NewLimiter(rate.Limit(v.rateLimit()), v.rateLimit())
	var g errgroup.Group
	g.SetLimit(v.concurrency())

	for i, name := range names {
		g.Go(func() error {
			res := cfg.Resources[name]
			start := time.Now()
			if err := limiter.Wait(ctx); err != nil {
				results[i] = VerifyResult{Name: name, URL: res.URL, Expected: res.Integrity, Status: StatusError, Err: err}
			} else {
				results[i] = v.verifyOne(ctx, name, res)
			}
			if v.OnResult != nil {
				v.OnResult(results[i], time.Since(start))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (v *Verifier) verifyOne(ctx context.Context, name string, res Resource) VerifyResult {
	out := VerifyResult{Name: name, URL: res.URL, Expected: res.Integrity}
	log := v.logger().With("resource", name, "url", res.URL)

	result, ok, err := v.Calculator.Verify(ctx, res.URL, res.Integrity)
	if result != nil {
		out.Actual = result.Integrity(sri.Recommended)
	}

	switch {
	case errors.Is(err, sharederrors.ErrInvalidIntegrity):
		out.Status = StatusInvalid
		out.Err = err
		log.Debugw("configured integrity is not a usable SRI value", "integrity", res.Integrity)
	case err != nil:
		out.Status = StatusError
		out.Err = err
		log.Debugw("verification failed", "error", err)
	case ok:
		out.Status = StatusMatch
		log.Debugw("integrity matches", "bytes", result.ByteLength)
	default:
		out.Status = StatusMismatch
		log.Debugw("integrity mismatch", "expected", res.Integrity, "actual", out.Actual)
	}

	return out
}

func (v *Verifier) concurrency() int {
	if v.Concurrency <= 0 {
		return 1
	}
	return v.Concurrency
}

func (v *Verifier) rateLimit() int {
	if v.RateLimit <= 0 {
		return 1
	}
	return v.RateLimit
}

func (v *Verifier) logger() *zap.SugaredLogger {
	if v.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return v.Logger
}
