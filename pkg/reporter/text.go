package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/cppgrader/internal/ui/pretty"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

const defaultRuleWidth = 80

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Critical.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil {
			continue
		}

		if file.Result.ErrorMessage != "" {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Critical.Render("error: "+file.Result.ErrorMessage),
			)
			continue
		}

		violations := file.Result.Violations
		if len(violations) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(violations)))

		for i := range violations {
			fmt.Fprint(r.bw, r.styles.FormatViolation(file.Path, &violations[i], r.opts.ShowContext))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", ruleWidth(r.opts.Writer))))
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// ruleWidth returns the terminal width for the writer, or a default when the
// writer is not a terminal.
func ruleWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultRuleWidth
}
