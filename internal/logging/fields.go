package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Parsing fields.
	FieldBytes = "bytes"
	FieldNodes = "nodes"

	// Pruning fields.
	FieldDropped = "dropped"
	FieldRemoved = "removed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
