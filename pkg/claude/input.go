package claude

import "github.com/google/uuid"

// Input is implemented by every hook input. The set of inputs is fixed by this
// package; tool parameter shapes are supplied through type parameters.
type Input interface {
	// Common returns the fields the host sends for every event.
	Common() InputCommon

	event() Event
	requiredKeys() []string
}

// InputCommon holds the fields shared by all hook inputs.
type InputCommon struct {
	SessionID      uuid.UUID      `json:"session_id"`
	TranscriptPath string         `json:"transcript_path"`
	Cwd            string         `json:"cwd"`
	PermissionMode PermissionMode `json:"permission_mode"`
	HookEventName  Event          `json:"hook_event_name"`
}

func (c InputCommon) Common() InputCommon {
	return c
}

var commonKeys = []string{
	"session_id",
	"transcript_path",
	"cwd",
	"permission_mode",
	"hook_event_name",
}

func withCommonKeys(keys ...string) []string {
	return append(append([]string{}, commonKeys...), keys...)
}

// PreToolUseInput is sent before a tool call. ToolInput is nil when the host
// sends no tool_input or an explicit null.
type PreToolUseInput[T any] struct {
	InputCommon
	ToolName  string `json:"tool_name"`
	ToolInput *T     `json:"tool_input,omitempty"`
}

func (PreToolUseInput[T]) event() Event { return PreToolUse }

func (PreToolUseInput[T]) requiredKeys() []string { return withCommonKeys("tool_name") }

// PostToolUseInput is sent after a tool call with the tool's response.
type PostToolUseInput[T, R any] struct {
	InputCommon
	ToolName     string `json:"tool_name"`
	ToolInput    *T     `json:"tool_input,omitempty"`
	ToolResponse *R     `json:"tool_response,omitempty"`
}

func (PostToolUseInput[T, R]) event() Event { return PostToolUse }

func (PostToolUseInput[T, R]) requiredKeys() []string { return withCommonKeys("tool_name") }

// PermissionRequestInput is sent when the host is about to show a permission
// dialog for a tool call.
type PermissionRequestInput[T any] struct {
	InputCommon
	ToolName  string `json:"tool_name"`
	ToolInput *T     `json:"tool_input,omitempty"`
}

func (PermissionRequestInput[T]) event() Event { return PermissionRequest }

func (PermissionRequestInput[T]) requiredKeys() []string { return withCommonKeys("tool_name") }

type NotificationInput struct {
	InputCommon
	Message string `json:"message"`
}

func (NotificationInput) event() Event { return Notification }

func (NotificationInput) requiredKeys() []string { return withCommonKeys("message") }

type UserPromptSubmitInput struct {
	InputCommon
	Prompt string `json:"prompt"`
}

func (UserPromptSubmitInput) event() Event { return UserPromptSubmit }

func (UserPromptSubmitInput) requiredKeys() []string { return withCommonKeys("prompt") }

// StopInput is sent when the main agent stops. StopHookActive is true when the
// agent is already continuing because of a stop hook; check it to avoid loops.
type StopInput struct {
	InputCommon
	StopHookActive bool `json:"stop_hook_active"`
}

func (StopInput) event() Event { return Stop }

func (StopInput) requiredKeys() []string { return withCommonKeys("stop_hook_active") }

// SubagentStopInput mirrors StopInput for subagents.
type SubagentStopInput struct {
	InputCommon
	StopHookActive bool `json:"stop_hook_active"`
}

func (SubagentStopInput) event() Event { return SubagentStop }

func (SubagentStopInput) requiredKeys() []string { return withCommonKeys("stop_hook_active") }

type SessionStartInput struct {
	InputCommon
	Source SessionStartSource `json:"source"`
}

func (SessionStartInput) event() Event { return SessionStart }

func (SessionStartInput) requiredKeys() []string { return withCommonKeys("source") }

type SessionEndInput struct {
	InputCommon
	Reason SessionEndReason `json:"reason"`
}

func (SessionEndInput) event() Event { return SessionEnd }

func (SessionEndInput) requiredKeys() []string { return withCommonKeys("reason") }
