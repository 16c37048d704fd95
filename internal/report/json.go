package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/khanhnv2901/sri-cli/internal/scanner"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	output io.Writer
	indent string
}

// NewJSONWriter creates a pretty-printing JSONWriter.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output, indent: "  "}
}

type jsonSummary struct {
	Total     int `json:"total"`
	Successes int `json:"successes"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
}

type jsonReport struct {
	Passed    bool              `json:"passed"`
	ExitCode  int               `json:"exit_code"`
	Summary   jsonSummary       `json:"summary"`
	Successes []scanner.Finding `json:"successes"`
	Errors    []scanner.Finding `json:"errors"`
	Warnings  []scanner.Finding `json:"warnings"`
}

// Write implements Writer.
func (w *JSONWriter) Write(r *scanner.Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", w.indent)

	payload := jsonReport{
		Passed:   r.Passed(),
		ExitCode: r.ExitCode(),
		Summary: jsonSummary{
			Total:     r.Total(),
			Successes: len(r.Successes),
			Errors:    len(r.Errors),
			Warnings:  len(r.Warnings),
		},
		Successes: r.Successes,
		Errors:    r.Errors,
		Warnings:  r.Warnings,
	}

	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
