package claude

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidInvocation is returned when stdin is an interactive terminal, which
// means the hook was run by hand rather than by the host.
var ErrInvalidInvocation = errors.New("stdin is a terminal: hooks must be invoked by Claude Code with a JSON payload on stdin")

// ErrHookPanicked wraps a panic recovered by Protect, such as a
// NonBlockingError built with the reserved code 2.
var ErrHookPanicked = errors.New("hook panicked")

// InvalidInputError is returned when the stdin payload does not decode into
// the expected input. Raw keeps the payload for diagnosis.
type InvalidInputError struct {
	Err error
	Raw string
}

func newInvalidInputError(err error, raw []byte) *InvalidInputError {
	return &InvalidInputError{Err: err, Raw: rawText(raw)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid hook input: %v (payload: %s)", e.Err, e.Raw)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func rawText(raw []byte) string {
	if !utf8.Valid(raw) {
		return fmt.Sprintf("<non-UTF-8 payload: %d bytes>", len(raw))
	}
	return string(raw)
}
