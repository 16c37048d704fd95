package sri

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"strings"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
)

// Algorithm names an SRI hash function as it appears in an integrity value.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// Recommended is the algorithm used for example markup.
const Recommended = SHA384

// Algorithms lists the supported algorithms from weakest to strongest.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, SHA384, SHA512}
}

// Tag is the element kind a resource is rendered with.
type Tag string

const (
	TagStylesheet Tag = "stylesheet"
	TagScript     Tag = "script"
)

// InferTag guesses the element kind from the URL alone. Content type is not
// consulted, so a script URL containing ".css" is reported as a stylesheet.
func InferTag(rawURL string) Tag {
	if strings.Contains(rawURL, ".css") || strings.Contains(rawURL, "css2") {
		return TagStylesheet
	}
	return TagScript
}

// Result is one digest computation over a fetched resource.
type Result struct {
	URL        string `json:"url"`
	ByteLength int    `json:"byte_length"`
	SHA256     string `json:"sha256"`
	SHA384     string `json:"sha384"`
	SHA512     string `json:"sha512"`
	Tag        Tag    `json:"tag"`
}

// Compute digests body with every supported algorithm. An empty body is
// rejected because a zero-byte resource is never a valid digest target.
func Compute(rawURL string, body []byte) (*Result, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%s: %w", rawURL, sharederrors.ErrEmptyResource)
	}

	return &Result{
		URL:        rawURL,
		ByteLength: len(body),
		SHA256:     encode(sha256.New(), body),
		SHA384:     encode(sha512.New384(), body),
		SHA512:     encode(sha512.New(), body),
		Tag:        InferTag(rawURL),
	}, nil
}

// Digest returns the base64 digest of body for a single algorithm.
func Digest(alg Algorithm, body []byte) (string, error) {
	h, err := newHasher(alg)
	if err != nil {
		return "", err
	}
	return encode(h, body), nil
}

// Integrity returns the integrity attribute value for alg, e.g. "sha384-...".
func (r *Result) Integrity(alg Algorithm) string {
	var digest string
	switch alg {
	case SHA256:
		digest = r.SHA256
	case SHA384:
		digest = r.SHA384
	case SHA512:
		digest = r.SHA512
	default:
		return ""
	}
	return string(alg) + "-" + digest
}

func newHasher(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", sharederrors.ErrUnsupportedAlgorithm, alg)
	}
}

func encode(h hash.Hash, body []byte) string {
	_, _ = h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
