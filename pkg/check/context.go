package check

import (
	"context"

	"github.com/yaklabco/cppgrader/pkg/source"
)

// Context provides everything a checker needs to run.
//
// Design note: Context stores context.Context as a field (Ctx) rather than
// passing it as a method parameter. Context is a short-lived parameter object
// created per engine run, which keeps the Checker interface to a single
// Check method while still supporting cancellation via Cancelled().
type Context struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the source file under analysis.
	File *source.File

	// GuideText is the raw text of the uploaded style guide, possibly empty.
	// Guide-gated checks (magic numbers) consult it; everything else
	// ignores it.
	GuideText string
}

// NewContext creates a checker Context for the given file.
func NewContext(ctx context.Context, file *source.File, guideText string) *Context {
	return &Context{
		Ctx:       ctx,
		File:      file,
		GuideText: guideText,
	}
}

// Cancelled returns true if the context has been cancelled.
func (c *Context) Cancelled() bool {
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}
