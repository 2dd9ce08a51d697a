package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/cppgrader/internal/ui/pretty"
	"github.com/yaklabco/cppgrader/pkg/runner"
)

// SummaryReporter prints only the aggregate summary block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.ViolationsTotal, nil
}
