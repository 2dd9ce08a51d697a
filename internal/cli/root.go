// Package cli provides the Cobra command structure for cppgrader.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/cppgrader/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cppgrader command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "cppgrader",
		Short: "A deterministic C++ style grader",
		Long: `cppgrader grades C++ source files against plain-text or Markdown style
guides. A battery of deterministic checks covers indentation, braces,
comments, naming, memory management, and more; uploaded guide rules are
dispatched to matching checks by keyword. An optional Ollama-backed
semantic analyzer catches what pattern matching cannot.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newGradeCommand())
	rootCmd.AddCommand(newChecksCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
