// Package sri computes Subresource Integrity digests.
//
// A Result holds the SHA-256, SHA-384 and SHA-512 digests of one resource,
// standard base64 encoded with padding, together with the resource tag
// inferred from the URL. SHA-384 is the recommended default and is the digest
// embedded in rendered example markup.
//
// The Calculator ties a fetcher to Compute so callers get either a complete
// Result or a typed error, never a partial result.
package sri
