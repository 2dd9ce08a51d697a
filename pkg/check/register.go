package check

// init registers all built-in checkers with the default registry. The
// built-in battery always runs, independent of the uploaded style guide.
//
//nolint:gochecknoinits // Registration at init keeps checker wiring in one place
func init() {
	DefaultRegistry.Register(NewMixedIndentationChecker())
	DefaultRegistry.Register(NewNestingIndentationChecker())
	DefaultRegistry.Register(NewLineLengthChecker())
	DefaultRegistry.Register(NewMissingBracesChecker())
	DefaultRegistry.Register(NewFileHeaderChecker())
	DefaultRegistry.Register(NewNoCommentsChecker())
	DefaultRegistry.Register(NewMemoryChecker())
	DefaultRegistry.Register(NewNamingChecker())
	DefaultRegistry.Register(NewMagicNumberChecker())
	DefaultRegistry.Register(NewNullptrChecker())
}
