package sri

import (
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	linkTemplate = `<link
  rel="stylesheet"
  href="{{url}}"
  integrity="{{integrity}}"
  crossorigin="anonymous">`

	scriptTemplate = `<script
  src="{{url}}"
  integrity="{{integrity}}"
  crossorigin="anonymous"></script>`

	attributeTemplate = `integrity="{{integrity}}"`
)

var (
	linkTpl      = fasttemplate.New(linkTemplate, "{{", "}}")
	scriptTpl    = fasttemplate.New(scriptTemplate, "{{", "}}")
	attributeTpl = fasttemplate.New(attributeTemplate, "{{", "}}")
)

// Attribute renders the ready-to-paste integrity attribute for alg.
func (r *Result) Attribute(alg Algorithm) string {
	return attributeTpl.ExecuteString(map[string]interface{}{
		"integrity": r.Integrity(alg),
	})
}

// Attributes renders one integrity attribute per supported algorithm.
func (r *Result) Attributes() []string {
	algs := Algorithms()
	out := make([]string, 0, len(algs))
	for _, alg := range algs {
		out = append(out, r.Attribute(alg))
	}
	return out
}

// Example renders a markup tag for the resource pinned with the SHA-384 digest.
func (r *Result) Example() string {
	tpl := scriptTpl
	if r.Tag == TagStylesheet {
		tpl = linkTpl
	}

	var b strings.Builder
	_, _ = tpl.Execute(&b, map[string]interface{}{
		"url":       r.URL,
		"integrity": r.Integrity(Recommended),
	})
	return b.String()
}
