// Package generator drives the end-to-end flow from a generation request
// to a validated test file: render prompt, call the LLM, validate the raw
// reply, and package the outcome.
package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"testforge/internal/llm"
	"testforge/internal/prompt"
	"testforge/internal/scratch"
	"testforge/internal/validator"
)

// Request describes one test-generation invocation. It is immutable input;
// the generator never retains it past the call.
type Request struct {
	ClassName       string
	SourceCode      string
	MethodSignature string // optional: focus the test on one method
	Framework       string // defaults to "junit5"
	ProjectDeps     []string
}

// Result is the generator's output for an accepted generation.
type Result struct {
	TestCode     string
	FilePath     string
	Dependencies []string
}

// advisory coordinates returned with every successful generation
var testDependencies = []string{
	"org.mockito:mockito-core",
	"org.junit.jupiter:junit-jupiter",
}

// Dependencies returns a copy of the fixed advisory dependency list.
func Dependencies() []string {
	deps := make([]string, len(testDependencies))
	copy(deps, testDependencies)
	return deps
}

// TestFilePath derives the conventional test file path for a class name.
func TestFilePath(className string) string {
	return path.Join("src", "test", "java", className+"Test.java")
}

// Generator orchestrates prompt rendering, the LLM call, and validation.
// It is safe for concurrent use: each Generate call works on its own
// request and report, and the scratch pad handles its own locking.
type Generator struct {
	client   llm.Client
	pad      scratch.Pad
	renderer *prompt.Renderer
	val      *validator.Validator
	strict   bool
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithStrict controls whether warnings block acceptance. Defaults to true.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// WithRenderer overrides the built-in prompt template.
func WithRenderer(r *prompt.Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithValidator overrides the default validator, e.g. to inject a custom
// danger-pattern list.
func WithValidator(v *validator.Validator) Option {
	return func(g *Generator) { g.val = v }
}

// New creates a Generator. pad may be nil when the caller keeps no shared
// state.
func New(client llm.Client, pad scratch.Pad, opts ...Option) *Generator {
	g := &Generator{
		client:   client,
		pad:      pad,
		renderer: prompt.NewRenderer(),
		val:      validator.New(),
		strict:   true,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one request through the pipeline. It returns a
// *ValidationError when the model's output fails validation; transport
// errors from the LLM propagate wrapped and unretried.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.ClassName == "" {
		return nil, fmt.Errorf("class name is required")
	}
	if req.Framework == "" {
		req.Framework = "junit5"
	}

	log := g.logger.With(
		zap.String("generation_id", uuid.NewString()),
		zap.String("class", req.ClassName),
	)

	userPrompt, err := g.renderer.Render(prompt.Data{
		ClassName:       req.ClassName,
		MethodSignature: req.MethodSignature,
		SourceCode:      req.SourceCode,
		ProjectDeps:     req.ProjectDeps,
		Framework:       req.Framework,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt: %w", err)
	}
	log.Debug("prompt rendered", zap.Int("bytes", len(userPrompt)))

	raw, err := g.client.CompleteWithSystem(ctx, prompt.SystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}
	log.Debug("model reply received", zap.Int("bytes", len(raw)))

	var report validator.Report
	if g.strict {
		report = g.val.ValidateStrict(raw, req.ClassName)
	} else {
		report = g.val.Validate(raw, req.ClassName)
	}
	if !report.Valid {
		log.Warn("generated test rejected",
			zap.Strings("errors", report.Errors),
			zap.Strings("suggestions", report.Suggestions))
		return nil, &ValidationError{Issues: report.Errors, Report: report}
	}

	filePath := TestFilePath(req.ClassName)
	if g.pad != nil {
		g.pad.Put(scratch.KeyLastGeneratedTest, scratch.Record{
			ClassName: req.ClassName,
			TestCode:  report.CleanCode,
			FilePath:  filePath,
		})
	}

	log.Info("test generated",
		zap.String("path", filePath),
		zap.Int("warnings", len(report.Warnings)))

	return &Result{
		TestCode:     report.CleanCode,
		FilePath:     filePath,
		Dependencies: Dependencies(),
	}, nil
}
