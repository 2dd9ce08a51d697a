// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// and environment variable support.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (CPPGRADER_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.cppgrader.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/cppgrader/config.yaml)
//  6. System config (/etc/cppgrader/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load config files, lowest precedence first.
	if !opts.IgnoreSystemConfig && paths.System != "" {
		cfg, err = loadAndMerge(cfg, paths.System, result)
		if err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		cfg, err = loadAndMerge(cfg, paths.User, result)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case opts.ExplicitPath != "":
		// Explicit path must exist; unlike discovered paths, a missing
		// file here is a hard error.
		cfg, err = loadAndMerge(cfg, opts.ExplicitPath, result)
		if err != nil {
			return nil, err
		}
	case !opts.IgnoreProjectConfig && paths.Project != "":
		cfg, err = loadAndMerge(cfg, paths.Project, result)
		if err != nil {
			return nil, err
		}
	}

	// Environment variables override file config. A .env file in the
	// working directory is folded into the environment first.
	if !opts.IgnoreEnv {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("load .env: %v", err))
		}
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// CLI flags take highest precedence.
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", &errs[0])
	}

	result.Config = cfg
	return result, nil
}

// loadAndMerge reads a YAML config file and merges it over base.
func loadAndMerge(base *config.Config, path string, result *LoadResult) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg config.Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	result.LoadedFrom = append(result.LoadedFrom, path)
	return merge(base, &fileCfg), nil
}
