// Package prompt renders the test-generation prompt from a fixed set of
// named fields. Template syntax is text/template; the generator only
// supplies the fields, never the template internals.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// SystemPrompt frames every generation call. It pins the model to the
// output shape the validator expects: one fenced java block, JUnit 5
// conventions, no process-level operations.
const SystemPrompt = `You are a Java test engineer generating JUnit 5 unit tests.

Generate clean, compilable test code that follows these conventions:
- One public test class named <ClassUnderTest>Test
- At least one @Test annotated method
- Import org.junit.jupiter.api.Test and static Assertions
- Use Mockito only when the class under test has dependencies, and import org.mockito when you do
- Never call Runtime, ProcessBuilder, exec() or System.exit()
- No main method

Return ONLY the complete test class inside a single fenced java code block.`

// Data carries the five fields the template renders.
type Data struct {
	ClassName       string
	MethodSignature string
	SourceCode      string
	ProjectDeps     []string
	Framework       string
}

const defaultTemplate = `Generate a unit test for the following Java class.

Class under test: {{.ClassName}}
{{- if .MethodSignature}}
Focus on this method: {{.MethodSignature}}
{{- end}}
Test framework: {{.Framework}}
{{- if .ProjectDeps}}

Known project dependencies:
{{- range .ProjectDeps}}
  - {{.}}
{{- end}}
{{- end}}

Source code:
` + "```java\n{{.SourceCode}}\n```" + `

Generate the complete test class:`

// Renderer renders generation prompts from Data.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a renderer using the built-in template.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("generate_test").Parse(defaultTemplate))}
}

// NewRendererFromString parses a caller-supplied template over the same
// field set.
func NewRendererFromString(text string) (*Renderer, error) {
	tmpl, err := template.New("generate_test").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the user prompt for one generation request.
func (r *Renderer) Render(data Data) (string, error) {
	if data.Framework == "" {
		data.Framework = "junit5"
	}
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}
