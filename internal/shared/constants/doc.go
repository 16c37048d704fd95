// Package constants centralizes defaults shared across the CLI.
//
// Fetch timeouts, snippet limits, the placeholder marker and the default
// project-relative input paths live here so cmd/ and internal/ agree on them
// without introducing import cycles.
package constants
