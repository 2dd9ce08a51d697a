// Package runner provides multi-file analysis orchestration for the CLI.
package runner

import "github.com/yaklabco/cppgrader/pkg/styleguide"

// Options controls multi-file analysis behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered C++ sources. Defaults via DefaultExtensions().
	Extensions []string

	// Guide is the parsed style guide, or nil when the run uses built-in
	// checks only.
	Guide *styleguide.Guide

	// UseRAG forwards retrieval context to the semantic analyzer, when one
	// is attached.
	UseRAG bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// DefaultExtensions returns the default set of C++ source file extensions.
func DefaultExtensions() []string {
	return []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".h"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
