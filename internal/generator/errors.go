package generator

import (
	"strings"

	"testforge/internal/validator"
)

// ValidationError reports that the model's output failed validation. It is
// the only error kind the generator itself raises; the full report rides
// along so callers can inspect warnings, suggestions and the extracted
// candidate even after a strict-mode rejection.
type ValidationError struct {
	Issues []string
	Report validator.Report
}

func (e *ValidationError) Error() string {
	return "test generation failed validation: " + strings.Join(e.Issues, "; ")
}
