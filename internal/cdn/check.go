package cdn

import (
	"github.com/khanhnv2901/sri-cli/internal/scanner"
	"github.com/khanhnv2901/sri-cli/internal/sri"
)

// Candidate converts a configured resource into a scanner candidate so the
// same policy applies to configuration and markup.
func Candidate(r Resource) scanner.Candidate {
	kind := scanner.KindScript
	if sri.InferTag(r.URL) == sri.TagStylesheet {
		kind = scanner.KindLink
	}
	return scanner.Candidate{
		Kind:           kind,
		URL:            r.URL,
		Integrity:      r.Integrity,
		HasIntegrity:   r.Integrity != "",
		HasCrossOrigin: r.CrossOrigin != "",
	}
}

// Check classifies every configured resource in name order.
func Check(cfg *Config) *scanner.Report {
	report := scanner.NewReport()
	for _, name := range cfg.Names() {
		ref, ok := scanner.NewReference(Candidate(cfg.Resources[name]))
		if !ok {
			continue
		}
		report.Add(scanner.Classify(ref))
	}
	return report
}
