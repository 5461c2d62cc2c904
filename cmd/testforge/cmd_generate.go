package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"testforge/internal/generator"
	"testforge/internal/llm"
	"testforge/internal/scratch"
)

var (
	flagClass     string
	flagMethod    string
	flagFramework string
	flagDeps      []string
	flagOutputDir string
	flagDryRun    bool
)

// generateCmd generates tests for one or more Java source files
var generateCmd = &cobra.Command{
	Use:   "generate [java-file...]",
	Short: "Generate JUnit 5 tests for Java source files",
	Long: `Generates a validated JUnit 5 test class for each Java source file.

The class name defaults to the file's base name; override it with --class
when generating for a single file. Multiple files are generated in
parallel, one independent LLM call each.

Example:
  testforge generate src/main/java/com/acme/Calculator.java
  testforge generate --deps org.mockito:mockito-core Order.java Invoice.java`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagClass, "class", "", "class under test (single file only; defaults to file base name)")
	generateCmd.Flags().StringVar(&flagMethod, "method", "", "method signature to focus the test on")
	generateCmd.Flags().StringVar(&flagFramework, "framework", "junit5", "target test framework tag")
	generateCmd.Flags().StringArrayVar(&flagDeps, "deps", nil, "known project dependency coordinates (repeatable)")
	generateCmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "output directory (defaults to config output.dir)")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print generated tests instead of writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagClass != "" && len(args) > 1 {
		return fmt.Errorf("--class can only be used with a single file")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLM.TimeoutDuration())
	defer cancel()

	client, err := llm.NewClient(ctx, cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}

	pad := scratch.NewMemoryPad()
	gen := generator.New(client, pad,
		generator.WithLogger(logger),
		generator.WithStrict(cfg.Validation.Strict),
	)

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	// Each file is an independent invocation; the core stays synchronous.
	group, gctx := errgroup.WithContext(ctx)
	for _, arg := range args {
		group.Go(func() error {
			return generateOne(gctx, gen, arg, outputDir)
		})
	}

	if err := group.Wait(); err != nil {
		var valErr *generator.ValidationError
		if errors.As(err, &valErr) {
			for _, issue := range valErr.Issues {
				fmt.Fprintf(os.Stderr, "  - %s\n", issue)
			}
			return &exitError{code: 2, msg: err.Error()}
		}
		return err
	}
	return nil
}

func generateOne(ctx context.Context, gen *generator.Generator, sourcePath, outputDir string) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	className := flagClass
	if className == "" {
		className = strings.TrimSuffix(filepath.Base(sourcePath), ".java")
	}

	result, err := gen.Generate(ctx, generator.Request{
		ClassName:       className,
		SourceCode:      string(source),
		MethodSignature: flagMethod,
		Framework:       flagFramework,
		ProjectDeps:     flagDeps,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", sourcePath, err)
	}

	if flagDryRun {
		fmt.Printf("// %s\n%s\n", result.FilePath, result.TestCode)
		return nil
	}

	target := filepath.Join(outputDir, filepath.FromSlash(result.FilePath))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(result.TestCode+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	logger.Info("test written",
		zap.String("source", sourcePath),
		zap.String("target", target),
		zap.Strings("advisory_deps", result.Dependencies))
	fmt.Printf("%s -> %s\n", sourcePath, target)
	return nil
}
