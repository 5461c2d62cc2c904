// Package validator screens raw LLM output and turns it into a clean,
// structurally plausible JUnit 5 test file. All checks are lexical
// heuristics over the candidate text; nothing here parses Java. The
// pipeline is pure: identical input always yields an identical report,
// and validation issues are returned as data, never as errors.
package validator

// Report is the outcome of a single validation pass.
// Valid is true iff Errors is empty when the pipeline finishes.
type Report struct {
	Valid       bool
	CleanCode   string
	Errors      []string
	Warnings    []string
	Suggestions []string
}

// Issues flattens errors, warnings and suggestions in severity order.
func (r Report) Issues() []string {
	issues := make([]string, 0, len(r.Errors)+len(r.Warnings)+len(r.Suggestions))
	issues = append(issues, r.Errors...)
	issues = append(issues, r.Warnings...)
	issues = append(issues, r.Suggestions...)
	return issues
}

// Validator runs the extract -> safety -> structure pipeline.
// The danger pattern list is fixed at construction and never mutated.
type Validator struct {
	patterns []DangerPattern
}

// New creates a validator with the default danger pattern list.
func New() *Validator {
	return NewWithPatterns(DefaultDangerPatterns())
}

// NewWithPatterns creates a validator with an explicit pattern list.
// The list is screened in the order given.
func NewWithPatterns(patterns []DangerPattern) *Validator {
	return &Validator{patterns: patterns}
}

// Validate runs the full pipeline on raw model output. targetClass is the
// name of the class under test and may be empty; it only feeds the naming
// suggestion. Safety violations short-circuit: structure checks never run
// on unsafe code, and the safety reasons become the sole error list.
func (v *Validator) Validate(raw, targetClass string) Report {
	report := Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	code := ExtractCode(raw)
	if code == "" {
		report.Errors = append(report.Errors, "no java code block found")
		return report
	}
	report.CleanCode = code

	safe, reasons := CheckSafety(code, v.patterns)
	if !safe {
		report.Errors = append(report.Errors, reasons...)
		return report
	}

	errs, warns, sugs := checkStructure(code, targetClass)
	report.Errors = append(report.Errors, errs...)
	report.Warnings = append(report.Warnings, warns...)
	report.Suggestions = append(report.Suggestions, sugs...)

	report.Valid = len(report.Errors) == 0
	return report
}

// ValidateStrict runs Validate and then escalates every warning into an
// error, forcing Valid to false when any warning was produced. CleanCode
// stays populated after a strict rejection so callers can still inspect
// the extracted candidate.
func (v *Validator) ValidateStrict(raw, targetClass string) Report {
	report := v.Validate(raw, targetClass)
	if len(report.Warnings) > 0 {
		report.Errors = append(report.Errors, report.Warnings...)
		report.Valid = false
	}
	return report
}
