package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/cppgrader/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/cppgrader/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.cppgrader.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// cppgraderConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var cppgraderConfigFiles = []string{
	".cppgrader.yml",
	".cppgrader.yaml",
	"cppgrader.yml",
	"cppgrader.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
// It searches for:
//   - System config at /etc/cppgrader/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/cppgrader/config.{yaml,yml}
//   - Project config by searching upward from workDir for .cppgrader.{yaml,yml}
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{}

	paths.System = findSystemConfig()
	paths.User = findUserConfig()

	projectConfig, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("find project config: %w", err)
	}
	paths.Project = projectConfig

	return paths, nil
}

// findSystemConfig returns the system config path if it exists.
func findSystemConfig() string {
	if runtime.GOOS == "windows" {
		return ""
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join("/etc", "cppgrader", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findUserConfig returns the user config path if it exists.
// Follows XDG Base Directory conventions.
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(configHome, "cppgrader", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// The search stops at a VCS root (a directory containing .git, .hg, or .svn)
// or at the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range cppgraderConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}

		// Stop at VCS root, but only after checking the directory itself.
		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir contains a VCS marker directory.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
