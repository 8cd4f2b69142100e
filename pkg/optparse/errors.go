package optparse

import "errors"

// Fatal parse failures. A call that returns one of these produced no usable
// result; the caller should treat the invocation as untranslatable and skip
// it. Dropped tokens are not errors, they are reported through the Notifier.
var (
	// ErrShellSyntax means the raw invocation string had malformed quoting.
	ErrShellSyntax = errors.New("malformed shell quoting")
	// ErrTruncatedArgument means an option declared trailing arguments that
	// are not present in the invocation.
	ErrTruncatedArgument = errors.New("option arguments missing")
	// ErrMissingFileList means a file-list flag referenced a path that could
	// not be read.
	ErrMissingFileList = errors.New("file list cannot be read")
)
