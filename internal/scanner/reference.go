package scanner

import (
	"strings"

	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
)

// Kind identifies where a reference was found.
type Kind string

const (
	KindLink   Kind = "link"
	KindScript Kind = "script"
	KindImport Kind = "import"
)

// Candidate is a raw reference as extracted, before scope filtering.
type Candidate struct {
	Kind           Kind
	URL            string
	Integrity      string
	HasIntegrity   bool
	HasCrossOrigin bool
	Raw            string
}

// Reference is an in-scope external resource reference.
type Reference struct {
	Kind           Kind   `json:"kind"`
	URL            string `json:"url"`
	Integrity      string `json:"integrity,omitempty"`
	HasIntegrity   bool   `json:"has_integrity"`
	HasCrossOrigin bool   `json:"has_crossorigin"`
	Snippet        string `json:"snippet,omitempty"`
}

// NewReference promotes c to a Reference when its URL is absolute http or
// https. Relative and same-origin references are reported as not ok.
func NewReference(c Candidate) (Reference, bool) {
	if !IsExternal(c.URL) {
		return Reference{}, false
	}

	ref := Reference{
		Kind:           c.Kind,
		URL:            c.URL,
		Integrity:      c.Integrity,
		HasIntegrity:   c.HasIntegrity,
		HasCrossOrigin: c.HasCrossOrigin,
	}
	if c.Kind != KindImport && c.Raw != "" {
		ref.Snippet = Snippet(c.Raw)
	}
	return ref, true
}

// IsExternal reports whether rawURL points at another origin.
func IsExternal(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}

// Snippet truncates a source tag for display and marks the cut with "...".
func Snippet(tag string) string {
	runes := []rune(tag)
	if len(runes) > consts.SnippetLimit {
		runes = runes[:consts.SnippetLimit]
	}
	return string(runes) + "..."
}
