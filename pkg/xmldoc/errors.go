package xmldoc

import (
	"errors"
	"fmt"
)

// errNoRootElement is the parse failure reported for documents with
// no element at the top level.
var errNoRootElement = errors.New("document has no root element")

// ParseError reports that input bytes are not a well-formed XML
// document. No reader is produced when it is returned.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse XML: %s", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidValueError reports that the textual value of a node could not
// be coerced to the requested type. Name is the resolved name of the
// offending node.
type InvalidValueError struct {
	Name string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid numerical value", e.Name)
}
