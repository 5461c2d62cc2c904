package validator

import "regexp"

// DangerPattern pairs a textual signature of system-affecting code with
// the reason reported when it matches.
type DangerPattern struct {
	Pattern *regexp.Regexp
	Reason  string
}

// DefaultDangerPatterns returns the fixed screening list. Order matters:
// reasons are reported in list order, and callers treat the list as
// immutable process-wide configuration.
func DefaultDangerPatterns() []DangerPattern {
	return []DangerPattern{
		{
			Pattern: regexp.MustCompile(`\b(Runtime|ProcessBuilder)\.getRuntime\(\)`),
			Reason:  "Runtime must not be used to execute system commands",
		},
		{
			Pattern: regexp.MustCompile(`\bexec\(`),
			Reason:  "calls to exec() are not allowed",
		},
		{
			Pattern: regexp.MustCompile(`new ProcessBuilder`),
			Reason:  "spawning processes is not allowed",
		},
		{
			Pattern: regexp.MustCompile(`System\.exit`),
			Reason:  "System.exit() is not allowed",
		},
	}
}

// CheckSafety screens candidate code against the pattern list. It reports
// every matching pattern, not just the first, so callers see the full set
// of violations in one pass. Safety screening runs before any structural
// check and is never skipped or reordered.
func CheckSafety(code string, patterns []DangerPattern) (bool, []string) {
	var reasons []string
	for _, p := range patterns {
		if p.Pattern.MatchString(code) {
			reasons = append(reasons, p.Reason)
		}
	}
	return len(reasons) == 0, reasons
}
