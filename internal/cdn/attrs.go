package cdn

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/sri-cli/internal/sri"
)

// Anonymous is the only crossorigin mode under which SRI is enforced.
const Anonymous = "anonymous"

// Attribute is a single markup attribute.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute bag.
type Attributes []Attribute

// Get returns the value of name and whether it is present.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Map returns the attributes keyed by name.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}

func (a Attributes) String() string {
	parts := make([]string, 0, len(a))
	for _, attr := range a {
		parts = append(parts, fmt.Sprintf("%s=%q", attr.Name, attr.Value))
	}
	return strings.Join(parts, " ")
}

// LinkAttributes returns the attributes for a stylesheet <link> element.
func LinkAttributes(r Resource) Attributes {
	return Attributes{
		{Name: "rel", Value: "stylesheet"},
		{Name: "href", Value: r.URL},
		{Name: "integrity", Value: r.Integrity},
		{Name: "crossorigin", Value: Anonymous},
	}
}

// ScriptAttributes returns the attributes for a <script> element.
func ScriptAttributes(r Resource) Attributes {
	return Attributes{
		{Name: "src", Value: r.URL},
		{Name: "integrity", Value: r.Integrity},
		{Name: "crossorigin", Value: Anonymous},
	}
}

// AttributesFor picks link or script attributes using the URL heuristic.
func AttributesFor(r Resource) Attributes {
	if sri.InferTag(r.URL) == sri.TagStylesheet {
		return LinkAttributes(r)
	}
	return ScriptAttributes(r)
}
