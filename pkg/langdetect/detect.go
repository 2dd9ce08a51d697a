// Package langdetect provides language detection for uploaded source
// content. It uses go-enry to verify that files submitted for analysis
// actually look like C or C++.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the languages this service cares about.
const (
	LangCPP     = "c++"
	LangC       = "c"
	LangUnknown = "unknown"
)

// candidates passed to the classifier when extension and content heuristics
// are inconclusive.
//
//nolint:gochecknoglobals // Fixed candidate list
var candidates = []string{"C", "C++", "Objective-C", "Go", "Python", "Java", "Rust"}

// Detect returns the detected language for source content, using the file
// name's extension first and falling back to content classification.
func Detect(name string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return normalize(lang)
	}

	if len(content) == 0 {
		return LangUnknown
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangUnknown
}

// IsCPP reports whether the detected language is C or C++. Headers are
// routinely classified as C, so both count.
func IsCPP(lang string) bool {
	return lang == LangCPP || lang == LangC
}

func normalize(lang string) string {
	switch strings.ToLower(lang) {
	case "c++", "cpp":
		return LangCPP
	case "c":
		return LangC
	default:
		return strings.ToLower(lang)
	}
}
