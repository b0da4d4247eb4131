package claude

// Hook is the extension point: given a decoded input, compute a result.
// Invoke is called exactly once per process and never retried.
type Hook[I Input, O Output] interface {
	Invoke(ctx *Context, input I) Result[O]
	// Logging selects where ctx.Logger writes.
	Logging() LogConfig
}

// The per-event contracts below pin the input and output pairing, so a hook
// cannot return the output shape of another event.

type PreToolUseHook[T any] interface {
	Hook[PreToolUseInput[T], PreToolUseOutput[T]]
}

type PostToolUseHook[T, R any] interface {
	Hook[PostToolUseInput[T, R], PostToolUseOutput]
}

type PermissionRequestHook[T any] interface {
	Hook[PermissionRequestInput[T], PermissionRequestOutput[T]]
}

type NotificationHook interface {
	Hook[NotificationInput, NotificationOutput]
}

type UserPromptSubmitHook interface {
	Hook[UserPromptSubmitInput, UserPromptSubmitOutput]
}

type StopHook interface {
	Hook[StopInput, StopOutput]
}

type SubagentStopHook interface {
	Hook[SubagentStopInput, SubagentStopOutput]
}

type SessionStartHook interface {
	Hook[SessionStartInput, SessionStartOutput]
}

type SessionEndHook interface {
	Hook[SessionEndInput, SessionEndOutput]
}

// LogConfig selects the debug log sink of a hook. The zero value is disabled.
type LogConfig struct {
	path string
}

// LoggingDisabled discards everything written to ctx.Logger.
func LoggingDisabled() LogConfig {
	return LogConfig{}
}

// LogToFile appends ctx.Logger output to path, creating it if needed.
func LogToFile(path string) LogConfig {
	return LogConfig{path: path}
}

func (c LogConfig) Enabled() bool {
	return c.path != ""
}

func (c LogConfig) Path() string {
	return c.path
}

// NoLogging can be embedded in a hook type to get the default, disabled
// logging configuration.
type NoLogging struct{}

func (NoLogging) Logging() LogConfig {
	return LoggingDisabled()
}

// HookFunc adapts a function to Hook with logging disabled.
type HookFunc[I Input, O Output] func(ctx *Context, input I) Result[O]

func (f HookFunc[I, O]) Invoke(ctx *Context, input I) Result[O] {
	return f(ctx, input)
}

func (HookFunc[I, O]) Logging() LogConfig {
	return LoggingDisabled()
}

type loggingHook[I Input, O Output] struct {
	Hook[I, O]
	config LogConfig
}

func (h loggingHook[I, O]) Logging() LogConfig {
	return h.config
}

// WithLogging overrides the logging configuration of h.
func WithLogging[I Input, O Output](h Hook[I, O], config LogConfig) Hook[I, O] {
	return loggingHook[I, O]{Hook: h, config: config}
}
