package styleguide

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// ParseMarkdown converts a Markdown style guide into a Guide. Headings act as
// section headers and list items as rule bullets, with the same severity and
// id semantics as plain-text parsing.
func ParseMarkdown(name, content string) *Guide {
	guide := &Guide{
		Name:       name,
		RawContent: content,
	}

	src := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	section := defaultSection
	severity := config.DefaultSeverity

	// Walk never returns an error here: the visitor always returns nil.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			section = nodeText(node, src)
			severity = sectionSeverity(section)
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			text := nodeText(node, src)
			if text != "" {
				guide.Rules = append(guide.Rules, newRule(section, text, severity))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return guide
}

// ParseDocument parses a style guide in either format, choosing the Markdown
// path when the name or content indicates a Markdown document.
func ParseDocument(name, content string) *Guide {
	if looksLikeMarkdown(name, content) {
		return ParseMarkdown(name, content)
	}
	return Parse(name, content)
}

func looksLikeMarkdown(name, content string) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown") {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(content), "#")
}

// nodeText collects the raw text of all text descendants of n.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
