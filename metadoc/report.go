package metadoc

import "errors"

// Report collects the violations found by [Session.Validate].
type Report struct {
	// Violations in the order they were found.
	Violations []*Diagnostic

	failFast bool
}

// Add records a violation. It returns false when validation must stop
// because the report is in fail-fast mode.
func (r *Report) Add(d *Diagnostic) bool {
	r.Violations = append(r.Violations, d)

	return !r.failFast
}

// OK reports whether no violation was found.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// First returns the first violation, or nil.
func (r *Report) First() *Diagnostic {
	if len(r.Violations) == 0 {
		return nil
	}

	return r.Violations[0]
}

// Err joins all violations into one error, or returns nil.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Violations))
	for _, d := range r.Violations {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}
