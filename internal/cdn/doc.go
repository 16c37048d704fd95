// Package cdn models the project's CDN configuration record.
//
// Each logical resource name maps to a URL, its SRI integrity value and the
// crossorigin mode. LinkAttributes and ScriptAttributes turn a Resource into
// attribute bags for rendering; crossorigin is always "anonymous" there
// because browsers only enforce SRI on anonymous cross-origin fetches.
//
// Check applies the scanner policy to every entry without network access,
// while Verifier re-fetches each URL and compares the live digest with the
// configured one.
package cdn
