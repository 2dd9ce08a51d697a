package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

// writeFile creates a file (and parent directories) under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_FiltersByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cpp := writeFile(t, dir, "main.cpp", "int main() {}\n")
	writeFile(t, dir, "notes.txt", "not source\n")
	header := writeFile(t, dir, "defs.hpp", "#pragma once\n")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{header, cpp}, files, "sorted, extension-filtered")
}

func TestDiscover_RecursesSubdirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := writeFile(t, dir, filepath.Join("src", "util.cc"), "int u;\n")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{nested}, files)
}

func TestDiscover_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, filepath.Join(".git", "objects.cpp"), "not really source\n")
	visible := writeFile(t, dir, "main.cpp", "int main() {}\n")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, files)
}

func TestDiscover_ExplicitFileBypassesFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	odd := writeFile(t, dir, "submission.txt", "int main() {}\n")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{odd}})
	require.NoError(t, err)
	assert.Equal(t, []string{odd}, files, "explicitly named files are always included")
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cpp := writeFile(t, dir, "main.cpp", "int main() {}\n")

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{cpp, dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{cpp}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths: []string{filepath.Join(t.TempDir(), "absent")},
	})
	require.Error(t, err)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.cpp", "int main() {}\n")
	ino := writeFile(t, dir, "sketch.ino", "void setup() {}\n")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{dir},
		Extensions: []string{".ino"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{ino}, files)
}
