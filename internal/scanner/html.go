package scanner

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor tokenizes markup with golang.org/x/net/html instead of
// matching substrings, so attributes split across lines, unquoted values and
// tags inside comments are handled the way a browser would. Stylesheet
// imports still go through the regex rules.
type HTMLExtractor struct{}

// ExtractMarkup implements Extractor.
func (HTMLExtractor) ExtractMarkup(markup string) []Candidate {
	var links, scripts []Candidate

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		raw := string(z.Raw())
		tok := z.Token()
		switch tok.Data {
		case "link":
			links = append(links, tokenCandidate(KindLink, "href", tok, raw))
		case "script":
			c := tokenCandidate(KindScript, "src", tok, raw)
			if c.URL != "" {
				scripts = append(scripts, c)
			}
		}
	}

	return append(links, scripts...)
}

// ExtractStylesheet implements Extractor.
func (HTMLExtractor) ExtractStylesheet(stylesheet string) []Candidate {
	return RegexExtractor{}.ExtractStylesheet(stylesheet)
}

func tokenCandidate(kind Kind, urlKey string, tok html.Token, raw string) Candidate {
	c := Candidate{Kind: kind, Raw: raw}
	for _, attr := range tok.Attr {
		switch attr.Key {
		case urlKey:
			c.URL = strings.TrimSpace(attr.Val)
		case "integrity":
			if attr.Val != "" {
				c.Integrity = attr.Val
				c.HasIntegrity = true
			}
		case "crossorigin":
			c.HasCrossOrigin = true
		}
	}
	return c
}
