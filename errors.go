package persona

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMissingAPIKey indicates no API key is available. It is a
	// precondition failure: no request is attempted.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrTimeout indicates the completion request exceeded its deadline.
	// Completer implementations wrap it around transport timeout errors.
	ErrTimeout = errors.New("request timed out")

	// ErrEmptyReply indicates a successful response carried no reply text.
	ErrEmptyReply = errors.New("empty reply")
)
