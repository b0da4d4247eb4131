// Package claude provides typed building blocks for Claude Code hook executables.
//
// A hook is invoked by the host once per lifecycle event. It receives a JSON
// payload on stdin and answers with either a bare exit code or a JSON payload on
// stdout. This package decodes the payload into a typed input, runs the
// application's Hook and encodes the typed result back to the wire format.
package claude

import "fmt"

// Event is a Claude Code hook lifecycle event. The string value is the exact tag
// the host sends in hook_event_name and must not change.
type Event string

const (
	// PreToolUse runs before a tool call and can allow, deny or rewrite it.
	PreToolUse Event = "PreToolUse"
	// PostToolUse runs after a tool call completes.
	PostToolUse Event = "PostToolUse"
	// Notification runs when the host shows a notification.
	Notification Event = "Notification"
	// UserPromptSubmit runs when the user submits a prompt, before processing.
	UserPromptSubmit Event = "UserPromptSubmit"
	// Stop runs when the main agent finishes responding.
	Stop Event = "Stop"
	// SubagentStop runs when a subagent finishes.
	SubagentStop Event = "SubagentStop"
	// SessionStart runs when a session starts or resumes.
	SessionStart Event = "SessionStart"
	// SessionEnd runs when a session ends.
	SessionEnd Event = "SessionEnd"
	// PermissionRequest runs when the host is about to ask for a permission.
	PermissionRequest Event = "PermissionRequest"
)

// AllEvents returns every known event.
func AllEvents() []Event {
	return []Event{
		PreToolUse,
		PostToolUse,
		Notification,
		UserPromptSubmit,
		Stop,
		SubagentStop,
		SessionStart,
		SessionEnd,
		PermissionRequest,
	}
}

// IsValid reports whether e is one of the known events.
func (e Event) IsValid() bool {
	for _, valid := range AllEvents() {
		if e == valid {
			return true
		}
	}
	return false
}

func (e Event) String() string {
	return string(e)
}

// ParseEvent converts a wire tag into an Event.
func ParseEvent(s string) (Event, error) {
	e := Event(s)
	if !e.IsValid() {
		return "", fmt.Errorf("unknown hook event %q", s)
	}
	return e, nil
}

// UnmarshalText rejects unknown tags.
func (e *Event) UnmarshalText(text []byte) error {
	parsed, err := ParseEvent(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
