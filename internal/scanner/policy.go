package scanner

import (
	"fmt"
	"strings"

	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
)

// Verdict is the classification outcome for one reference.
type Verdict string

const (
	VerdictSuccess              Verdict = "success"
	VerdictMissingIntegrity     Verdict = "missing-integrity"
	VerdictPlaceholderIntegrity Verdict = "placeholder-integrity"
	VerdictMissingCrossOrigin   Verdict = "missing-crossorigin"
	VerdictExternalImport       Verdict = "external-import"
)

// Level is the report bucket a verdict lands in.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Level maps the verdict to its report bucket.
func (v Verdict) Level() Level {
	switch v {
	case VerdictMissingIntegrity, VerdictPlaceholderIntegrity:
		return LevelError
	case VerdictMissingCrossOrigin, VerdictExternalImport:
		return LevelWarning
	default:
		return LevelSuccess
	}
}

// Finding is a classified reference with its operator-facing message.
type Finding struct {
	Reference  Reference `json:"reference"`
	Verdict    Verdict   `json:"verdict"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Level is shorthand for f.Verdict.Level().
func (f Finding) Level() Level {
	return f.Verdict.Level()
}

// Classify applies the SRI policy to ref. The first matching rule wins.
func Classify(ref Reference) Finding {
	f := Finding{Reference: ref}
	subject := describe(ref.Kind)

	switch {
	case ref.Kind == KindImport:
		// @import cannot carry integrity or crossorigin attributes.
		f.Verdict = VerdictExternalImport
		f.Message = "Stylesheet @import loads a CDN resource"
		f.Suggestion = "Move it to a markup-level <link> reference with SRI"
	case !ref.HasIntegrity:
		f.Verdict = VerdictMissingIntegrity
		f.Message = subject + " is missing an integrity attribute"
		f.Suggestion = fmt.Sprintf("Run `sri hash %s` and add the integrity attribute", ref.URL)
	case strings.Contains(ref.Integrity, consts.PlaceholderMarker):
		f.Verdict = VerdictPlaceholderIntegrity
		f.Message = subject + " has a placeholder integrity hash"
		f.Suggestion = fmt.Sprintf("Run `sri hash %s` and replace the placeholder", ref.URL)
	case !ref.HasCrossOrigin:
		f.Verdict = VerdictMissingCrossOrigin
		f.Message = subject + " is missing a crossorigin attribute"
		f.Suggestion = `Add crossorigin="anonymous" so the browser enforces the integrity check`
	default:
		f.Verdict = VerdictSuccess
		f.Message = subject + " is fully SRI protected"
	}

	return f
}

func describe(kind Kind) string {
	switch kind {
	case KindScript:
		return "CDN script"
	case KindLink:
		return "CDN link"
	default:
		return "CDN reference"
	}
}
