package claude

import "fmt"

// BlockingExitCode is reserved for BlockingError and cannot be used as a
// custom non-blocking code.
const BlockingExitCode = 2

// ExitStatus is a bare process outcome: Success, BlockingError or a
// NonBlockingError with a caller-chosen code.
type ExitStatus struct {
	code     int
	blocking bool
}

var (
	// Success exits with 0 and no output.
	Success = ExitStatus{code: 0}
	// BlockingError exits with 2, which makes the host block the action.
	BlockingError = ExitStatus{code: BlockingExitCode, blocking: true}
)

// NonBlockingError exits with code. Code 2 is reserved for BlockingError; it
// and negative codes are rejected when the status is resolved.
func NonBlockingError(code int) ExitStatus {
	return ExitStatus{code: code}
}

// IsBlocking reports whether s is BlockingError.
func (s ExitStatus) IsBlocking() bool {
	return s.blocking
}

// Code resolves the process exit code. It panics if a non-blocking error was
// built with the reserved blocking code or a negative code: that is a defect in
// the hook, not a runtime condition.
func (s ExitStatus) Code() int {
	if !s.blocking && s.code == BlockingExitCode {
		panic(fmt.Sprintf("claude: non-blocking error cannot use reserved exit code %d", BlockingExitCode))
	}
	if s.code < 0 {
		panic(fmt.Sprintf("claude: invalid exit code %d", s.code))
	}
	return s.code
}

func (s ExitStatus) String() string {
	switch {
	case s.blocking:
		return "blocking-error"
	case s.code == 0:
		return "success"
	default:
		return fmt.Sprintf("non-blocking-error(%d)", s.code)
	}
}

// Result is what a Hook returns: either a bare ExitStatus or a structured
// output written to stdout with exit code 0.
type Result[O Output] struct {
	status ExitStatus
	output *O
}

// ExitCode builds a result that exits with status and writes nothing.
func ExitCode[O Output](status ExitStatus) Result[O] {
	return Result[O]{status: status}
}

// JSONOutput builds a result that writes output as JSON and exits with 0.
func JSONOutput[O Output](output O) Result[O] {
	return Result[O]{status: Success, output: &output}
}

// Output returns the structured payload, if any.
func (r Result[O]) Output() (O, bool) {
	if r.output == nil {
		var zero O
		return zero, false
	}
	return *r.output, true
}

// Status returns the exit status. Structured results always report Success.
func (r Result[O]) Status() ExitStatus {
	return r.status
}

// Ptr returns a pointer to v, for the optional fields of inputs and outputs.
func Ptr[T any](v T) *T {
	return &v
}
