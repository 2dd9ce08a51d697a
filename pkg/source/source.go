// Package source provides an immutable line-oriented view of a C++ source
// file for the check engine. Lines are physical lines, 1-indexed, and are
// never mutated by checks.
package source

import "strings"

// File is a parsed source file snapshot.
type File struct {
	// Name is the file's base name (e.g., "main.cpp").
	Name string

	// Path is the file's path as supplied by the caller. May be empty for
	// content that never lived on disk (e.g., uploads).
	Path string

	// Content is the raw file content.
	Content string

	// Lines holds the physical lines of Content without line terminators.
	Lines []string
}

// New builds a File snapshot from raw content.
func New(name, path, content string) *File {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return &File{
		Name:    name,
		Path:    path,
		Content: content,
		Lines:   strings.Split(normalized, "\n"),
	}
}

// LineCount returns the number of physical lines.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// Line returns the 1-indexed physical line, or "" when out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}

// IsBlank reports whether the 1-indexed line is empty or whitespace only.
func (f *File) IsBlank(n int) bool {
	return strings.TrimSpace(f.Line(n)) == ""
}

// IsComment reports whether the 1-indexed line starts a comment.
// Continuation lines of block comments written in the conventional
// leading-asterisk style also count.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

// IsPreprocessor reports whether the line is a preprocessor directive.
func IsPreprocessor(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// LeadingWhitespace returns the run of spaces and tabs at the start of line.
func LeadingWhitespace(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// Snippet returns the source text of the 1-indexed line with trailing
// whitespace removed, suitable for attaching to a violation. Leading
// whitespace is kept so column positions remain valid against the snippet.
// Lines past EOF yield "".
func (f *File) Snippet(n int) string {
	return strings.TrimRight(f.Line(n), " \t")
}
