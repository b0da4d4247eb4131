package claude

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/kamikazebr/claude-hookkit/internal/logger"
	"github.com/kamikazebr/claude-hookkit/pkg/env"
)

// exitFailure is the exit code Main uses when the transaction itself fails.
const exitFailure = 1

// Environment looks up environment variables for a hook.
type Environment = env.Environment

// Runner holds the process collaborators of a hook transaction.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	// Env defaults to the process environment.
	Env Environment
	// IsTerminal reports whether Stdin is interactive. Nil checks the file
	// descriptor when Stdin has one.
	IsTerminal func(stdin io.Reader) bool
}

// NewRunner returns a Runner wired to the real process.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Env:    env.OS(),
	}
}

// StdinIsTerminal reports whether stdin is interactive. Hooks are always
// invoked with a pipe, so a terminal means someone ran the binary by hand.
func (r *Runner) StdinIsTerminal() bool {
	if r.IsTerminal != nil {
		return r.IsTerminal(r.Stdin)
	}
	f, ok := r.Stdin.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}

func (r *Runner) environment() Environment {
	if r.Env == nil {
		return env.OS()
	}
	return r.Env
}

// Run performs one hook transaction: read stdin, decode it into I, invoke h,
// and either write the structured output to Stdout or write nothing. It
// returns the exit code the process should terminate with.
//
// Errors raised before h is invoked (ErrInvalidInvocation, *InvalidInputError)
// abort without calling h. Output is written all at once or not at all. A
// NonBlockingError with the reserved code 2 panics.
func Run[I Input, O Output](r *Runner, h Hook[I, O]) (int, error) {
	if r.StdinIsTerminal() {
		return exitFailure, ErrInvalidInvocation
	}

	log, err := openLog(h.Logging())
	if err != nil {
		return exitFailure, err
	}
	defer log.Close()

	var zero I
	event := zero.event()

	raw, err := io.ReadAll(r.Stdin)
	if err != nil {
		return exitFailure, fmt.Errorf("failed to read stdin: %w", err)
	}
	log.Slog().Debug("Hook input", "event", event, "payload", rawText(raw))

	input, err := Decode[I](raw)
	if err != nil {
		log.Slog().Error("Failed to decode input", "event", event, "error", err)
		return exitFailure, err
	}

	ctx := &Context{Logger: log.Slog(), env: r.environment()}
	result := h.Invoke(ctx, input)

	output, ok := result.Output()
	if !ok {
		status := result.Status()
		code := status.Code()
		log.Slog().Debug("Hook exit", "event", event, "status", status.String(), "code", code)
		return code, nil
	}

	data, err := Encode(output)
	if err != nil {
		log.Slog().Error("Failed to encode output", "event", event, "error", err)
		return exitFailure, err
	}
	log.Slog().Debug("Hook output", "event", event, "payload", string(data))

	if _, err := r.Stdout.Write(append(data, '\n')); err != nil {
		return exitFailure, fmt.Errorf("failed to write stdout: %w", err)
	}
	return 0, nil
}

func openLog(config LogConfig) (*logger.Logger, error) {
	if !config.Enabled() {
		return logger.Discard(), nil
	}
	return logger.Open(config.Path())
}

// Main runs h against the real process and exits. It is the whole main
// function of a single-event hook executable:
//
//	func main() {
//		claude.Main[claude.StopInput, claude.StopOutput](myStopHook{})
//	}
func Main[I Input, O Output](h Hook[I, O]) {
	code, err := Protect(func() (int, error) {
		return Run(NewRunner(), h)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
	}
	os.Exit(code)
}

// Protect calls run and turns a panic into an exitFailure result. An
// unrecovered panic exits with status 2, which the host would read as a
// blocking error, so a process that runs hooks must not let one escape.
func Protect(run func() (int, error)) (code int, err error) {
	defer func() {
		if p := recover(); p != nil {
			code, err = exitFailure, fmt.Errorf("%w: %v", ErrHookPanicked, p)
		}
	}()
	return run()
}
