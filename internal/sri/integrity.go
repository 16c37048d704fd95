package sri

import (
	"encoding/base64"
	"fmt"
	"strings"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
)

// Hash is one "<algorithm>-<base64>" token of an integrity attribute.
type Hash struct {
	Algorithm Algorithm
	Digest    string
}

func (h Hash) String() string {
	return fmt.Sprintf("%s-%s", h.Algorithm, h.Digest)
}

// ParseIntegrity splits an integrity attribute into its hash tokens. Options
// after "?" are dropped. Tokens with unknown algorithms are skipped, matching
// browser behavior; an error is returned only when nothing usable remains.
func ParseIntegrity(value string) ([]Hash, error) {
	var hashes []Hash
	for _, token := range strings.Fields(value) {
		token, _, _ = strings.Cut(token, "?")
		alg, digest, ok := strings.Cut(token, "-")
		if !ok || digest == "" {
			continue
		}
		if _, err := newHasher(Algorithm(alg)); err != nil {
			continue
		}
		if _, err := base64.StdEncoding.DecodeString(digest); err != nil {
			continue
		}
		hashes = append(hashes, Hash{Algorithm: Algorithm(alg), Digest: digest})
	}

	if len(hashes) == 0 {
		return nil, fmt.Errorf("%w: %q", sharederrors.ErrInvalidIntegrity, value)
	}
	return hashes, nil
}

// Matches reports whether body satisfies value. Like a browser, only the
// hashes using the strongest algorithm present are considered.
func Matches(value string, body []byte) (bool, error) {
	hashes, err := ParseIntegrity(value)
	if err != nil {
		return false, err
	}
	strongest := strongestAlgorithm(hashes)
	for _, h := range hashes {
		if h.Algorithm != strongest {
			continue
		}
		digest, err := Digest(h.Algorithm, body)
		if err != nil {
			return false, err
		}
		if digest == h.Digest {
			return true, nil
		}
	}
	return false, nil
}

func strongestAlgorithm(hashes []Hash) Algorithm {
	rank := map[Algorithm]int{SHA256: 1, SHA384: 2, SHA512: 3}
	var best Algorithm
	for _, h := range hashes {
		if rank[h.Algorithm] > rank[best] {
			best = h.Algorithm
		}
	}
	return best
}
