package scanner

// Scanner classifies the references an Extractor finds.
type Scanner struct {
	extractor Extractor
}

// New returns a Scanner using extractor, or the regex extractor when nil.
func New(extractor Extractor) *Scanner {
	if extractor == nil {
		extractor = RegexExtractor{}
	}
	return &Scanner{extractor: extractor}
}

// Scan inspects markup and stylesheet text. It never fails; a missing
// stylesheet should be passed as an empty string.
func (s *Scanner) Scan(markup, stylesheet string) *Report {
	report := NewReport()

	candidates := s.extractor.ExtractMarkup(markup)
	candidates = append(candidates, s.extractor.ExtractStylesheet(stylesheet)...)

	for _, c := range candidates {
		ref, ok := NewReference(c)
		if !ok {
			continue
		}
		report.Add(Classify(ref))
	}

	return report
}

// Scan runs the default regex scanner.
func Scan(markup, stylesheet string) *Report {
	return New(nil).Scan(markup, stylesheet)
}

// ExtractorFor returns the extractor registered under name ("regex" or "html").
func ExtractorFor(name string) (Extractor, bool) {
	switch name {
	case "", "regex":
		return RegexExtractor{}, true
	case "html":
		return HTMLExtractor{}, true
	}
	return nil, false
}
