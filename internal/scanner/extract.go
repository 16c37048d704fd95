package scanner

import "regexp"

// Extractor finds candidate references in project documents.
type Extractor interface {
	// ExtractMarkup returns <link> candidates followed by <script src> candidates.
	ExtractMarkup(markup string) []Candidate
	// ExtractStylesheet returns @import url(...) candidates.
	ExtractStylesheet(stylesheet string) []Candidate
}

var (
	linkTagPattern   = regexp.MustCompile(`(?i)<link\b[^>]*>`)
	scriptTagPattern = regexp.MustCompile(`(?i)<script\b[^>]*\ssrc\s*=\s*["'][^"']+["'][^>]*>`)
	importPattern    = regexp.MustCompile(`@import\s+url\(\s*["']([^"']+)["']\s*\)`)

	hrefAttr      = attributePattern("href")
	srcAttr       = attributePattern("src")
	integrityAttr = attributePattern("integrity")
	// crossorigin may legally appear without a value.
	crossOriginAttr = regexp.MustCompile(`(?i)\scrossorigin(?:\s*=|[\s/>]|$)`)
	quotedValue     = regexp.MustCompile(`"[^"]*"|'[^']*'`)
)

func attributePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\s` + name + `\s*=\s*["']([^"']+)["']`)
}

// RegexExtractor matches tag-like substrings. Each attribute is looked up
// independently, so attribute order inside a tag does not matter.
type RegexExtractor struct{}

// ExtractMarkup implements Extractor.
func (RegexExtractor) ExtractMarkup(markup string) []Candidate {
	var out []Candidate

	for _, tag := range linkTagPattern.FindAllString(markup, -1) {
		out = append(out, tagCandidate(KindLink, tag, hrefAttr))
	}
	for _, tag := range scriptTagPattern.FindAllString(markup, -1) {
		out = append(out, tagCandidate(KindScript, tag, srcAttr))
	}

	return out
}

// ExtractStylesheet implements Extractor.
func (RegexExtractor) ExtractStylesheet(stylesheet string) []Candidate {
	var out []Candidate
	for _, m := range importPattern.FindAllStringSubmatch(stylesheet, -1) {
		out = append(out, Candidate{Kind: KindImport, URL: m[1], Raw: m[0]})
	}
	return out
}

func tagCandidate(kind Kind, tag string, urlAttr *regexp.Regexp) Candidate {
	c := Candidate{
		Kind:           kind,
		URL:            firstGroup(urlAttr, tag),
		HasCrossOrigin: hasCrossOrigin(tag),
		Raw:            tag,
	}
	if m := integrityAttr.FindStringSubmatch(tag); m != nil {
		c.Integrity = m[1]
		c.HasIntegrity = true
	}
	return c
}

// hasCrossOrigin looks for the attribute name outside quoted values only.
func hasCrossOrigin(tag string) bool {
	return crossOriginAttr.MatchString(quotedValue.ReplaceAllString(tag, `""`))
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
