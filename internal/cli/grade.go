package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cppgrader/internal/configloader"
	"github.com/yaklabco/cppgrader/internal/llm"
	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/pkg/analyzer"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
	"github.com/yaklabco/cppgrader/pkg/reporter"
	"github.com/yaklabco/cppgrader/pkg/runner"
	"github.com/yaklabco/cppgrader/pkg/styleguide"
)

// ErrViolationsFound is returned when grading finds violations that should
// fail the command.
var ErrViolationsFound = errors.New("style violations found")

type gradeFlags struct {
	format    string
	guidePath string
	strict    bool
	noContext bool
	compact   bool
	semantic  bool
}

func newGradeCommand() *cobra.Command {
	var cfg config.Config
	flags := &gradeFlags{}

	cmd := &cobra.Command{
		Use:   "grade [paths...]",
		Short: "Grade C++ files against a style guide",
		Long:  gradeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(cmd, args, &cfg, flags)
		},
	}

	addGradeFlags(cmd, &cfg, flags)

	return cmd
}

const gradeLongDescription = `Grade C++ source files for style violations.

By default, grades all .cpp, .cc, .cxx, .hpp, .hh, and .h files in the
current directory and subdirectories. Specify paths to grade specific
files or directories. Without a style guide, only the built-in battery
of deterministic checks runs.

Examples:
  cppgrader grade                          # Grade current directory
  cppgrader grade src/                     # Grade src directory
  cppgrader grade main.cpp                 # Grade single file
  cppgrader grade --style-guide rules.md   # Grade against a style guide
  cppgrader grade --format json            # Output as JSON for CI
  cppgrader grade --strict                 # Treat warnings as failures`

func runGrade(cmd *cobra.Command, args []string, cfg *config.Config, flags *gradeFlags) error {
	logger := logging.Default()

	cfg.Format = config.OutputFormat(flags.format)
	cfg.StyleGuidePath = flags.guidePath
	if flags.semantic {
		cfg.Ollama.Enabled = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	// Load the style guide, if one was given.
	var guide *styleguide.Guide
	if finalCfg.StyleGuidePath != "" {
		content, err := os.ReadFile(finalCfg.StyleGuidePath)
		if err != nil {
			return fmt.Errorf("read style guide: %w", err)
		}
		guide = styleguide.ParseDocument(filepath.Base(finalCfg.StyleGuidePath), string(content))
		logger.Debug("style guide loaded",
			logging.FieldPath, finalCfg.StyleGuidePath,
			logging.FieldRule, len(guide.Rules),
		)
	}

	// Assemble the analysis pipeline.
	engine := check.NewEngine(check.DefaultRegistry)

	var opts []analyzer.Option
	if finalCfg.Ollama.Enabled {
		opts = append(opts, analyzer.WithSemanticAnalyzer(llm.New(finalCfg.Ollama)))
	}

	gradeRunner := runner.New(analyzer.New(engine, opts...))

	runOpts := runner.Options{
		Paths:      args,
		Extensions: runner.DefaultExtensions(),
		Guide:      guide,
		Jobs:       finalCfg.Jobs,
	}

	logger.Debug("starting grade run",
		"paths", runOpts.Paths,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := gradeRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("grade run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrViolationsFound
	}

	return nil
}

func addGradeFlags(cmd *cobra.Command, cfg *config.Config, flags *gradeFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringVar(&flags.guidePath, "style-guide", "", "path to a style guide file")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")
	cmd.Flags().BoolVar(&flags.semantic, "semantic", false, "enable Ollama-backed semantic analysis")
}
