package scanner

// Report aggregates the findings of one scan in discovery order.
type Report struct {
	Successes []Finding `json:"successes"`
	Errors    []Finding `json:"errors"`
	Warnings  []Finding `json:"warnings"`
}

// NewReport returns an empty report with non-nil buckets.
func NewReport() *Report {
	return &Report{
		Successes: []Finding{},
		Errors:    []Finding{},
		Warnings:  []Finding{},
	}
}

// Add files f under the bucket for its level.
func (r *Report) Add(f Finding) {
	switch f.Level() {
	case LevelError:
		r.Errors = append(r.Errors, f)
	case LevelWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Successes = append(r.Successes, f)
	}
}

// Passed reports whether the scan found no errors. Warnings never fail a scan.
func (r *Report) Passed() bool {
	return len(r.Errors) == 0
}

// Clean reports whether the scan found neither errors nor warnings.
func (r *Report) Clean() bool {
	return r.Passed() && len(r.Warnings) == 0
}

// ExitCode is 0 for a passing report and 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Total is the number of in-scope references classified.
func (r *Report) Total() int {
	return len(r.Successes) + len(r.Errors) + len(r.Warnings)
}
