package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// Exit codes for xmldoc, following the BSD sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failed command.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates malformed input documents.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a command error to an exit code.
func ExitCodeForError(err error) int {
	var parseErr *xmldoc.ParseError
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &parseErr):
		return ExitDataError
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}
