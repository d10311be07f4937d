package logging

// Field name constants for structured logging.
const (
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldBytes  = "bytes"

	// Document fields.
	FieldPath  = "path"
	FieldDepth = "depth"
	FieldNodes = "nodes"
	FieldRules = "rules"

	// WS-Discovery fields.
	FieldAction    = "action"
	FieldAddress   = "address"
	FieldEndpoints = "endpoints"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
