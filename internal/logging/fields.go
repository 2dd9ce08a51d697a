package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFile  = "file"
	FieldFiles = "files"

	// Store fields.
	FieldFileID  = "file_id"
	FieldGuideID = "style_guide_id"
	FieldDocID   = "doc_id"
	FieldSize    = "size"

	// Analysis fields.
	FieldChecker    = "checker"
	FieldRule       = "rule"
	FieldViolations = "violations"
	FieldSeverity   = "severity"
	FieldLine       = "line"
	FieldUseRAG     = "use_rag"

	// Collaborator fields.
	FieldModel    = "model"
	FieldHost     = "host"
	FieldAttempt  = "attempt"
	FieldDuration = "duration"
	FieldQuery    = "query"
	FieldTopK     = "top_k"

	// Run statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldJobs            = "jobs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
