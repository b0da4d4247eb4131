package claude

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Output is implemented by every hook output.
type Output interface {
	// Control returns the fields every output may carry.
	Control() OutputControl

	event() Event
}

// OutputControl holds the optional control fields shared by all outputs. Nil
// fields are omitted from the encoded JSON. Continue=false takes precedence
// over any blocking decision in the host.
type OutputControl struct {
	Continue       *bool   `json:"continue,omitempty"`
	StopReason     *string `json:"stop_reason,omitempty"`
	SuppressOutput *bool   `json:"suppress_output,omitempty"`
	SystemMessage  *string `json:"system_message,omitempty"`
}

func (c OutputControl) Control() OutputControl {
	return c
}

type PreToolUseOutput[T any] struct {
	OutputControl
	HookSpecificOutput *PreToolUseSpecificOutput[T] `json:"hook_specific_output,omitempty"`
}

func (PreToolUseOutput[T]) event() Event { return PreToolUse }

// PreToolUseSpecificOutput carries the permission verdict for a tool call.
// UpdatedInput, when set, replaces the tool parameters before execution.
type PreToolUseSpecificOutput[T any] struct {
	PermissionDecision       *PermissionDecision `json:"permission_decision,omitempty"`
	PermissionDecisionReason *string             `json:"permission_decision_reason,omitempty"`
	UpdatedInput             *T                  `json:"updated_input,omitempty"`
}

type preToolUseSpecificFields[T any] PreToolUseSpecificOutput[T]

func (o PreToolUseSpecificOutput[T]) MarshalJSON() ([]byte, error) {
	return marshalSpecific(PreToolUse, preToolUseSpecificFields[T](o))
}

func (o *PreToolUseSpecificOutput[T]) UnmarshalJSON(data []byte) error {
	return unmarshalSpecific(data, PreToolUse, (*preToolUseSpecificFields[T])(o))
}

type PostToolUseOutput struct {
	OutputControl
	Decision           *BlockDecision             `json:"decision,omitempty"`
	Reason             *string                    `json:"reason,omitempty"`
	HookSpecificOutput *PostToolUseSpecificOutput `json:"hook_specific_output,omitempty"`
}

func (PostToolUseOutput) event() Event { return PostToolUse }

type PostToolUseSpecificOutput struct {
	AdditionalContext *string `json:"additional_context,omitempty"`
}

type postToolUseSpecificFields PostToolUseSpecificOutput

func (o PostToolUseSpecificOutput) MarshalJSON() ([]byte, error) {
	return marshalSpecific(PostToolUse, postToolUseSpecificFields(o))
}

func (o *PostToolUseSpecificOutput) UnmarshalJSON(data []byte) error {
	return unmarshalSpecific(data, PostToolUse, (*postToolUseSpecificFields)(o))
}

type UserPromptSubmitOutput struct {
	OutputControl
	Decision           *BlockDecision                  `json:"decision,omitempty"`
	Reason             *string                         `json:"reason,omitempty"`
	HookSpecificOutput *UserPromptSubmitSpecificOutput `json:"hook_specific_output,omitempty"`
}

func (UserPromptSubmitOutput) event() Event { return UserPromptSubmit }

type UserPromptSubmitSpecificOutput struct {
	AdditionalContext *string `json:"additional_context,omitempty"`
}

type userPromptSubmitSpecificFields UserPromptSubmitSpecificOutput

func (o UserPromptSubmitSpecificOutput) MarshalJSON() ([]byte, error) {
	return marshalSpecific(UserPromptSubmit, userPromptSubmitSpecificFields(o))
}

func (o *UserPromptSubmitSpecificOutput) UnmarshalJSON(data []byte) error {
	return unmarshalSpecific(data, UserPromptSubmit, (*userPromptSubmitSpecificFields)(o))
}

type StopOutput struct {
	OutputControl
	Decision *BlockDecision `json:"decision,omitempty"`
	Reason   *string        `json:"reason,omitempty"`
}

func (StopOutput) event() Event { return Stop }

type SubagentStopOutput struct {
	OutputControl
	Decision *BlockDecision `json:"decision,omitempty"`
	Reason   *string        `json:"reason,omitempty"`
}

func (SubagentStopOutput) event() Event { return SubagentStop }

type SessionStartOutput struct {
	OutputControl
	HookSpecificOutput *SessionStartSpecificOutput `json:"hook_specific_output,omitempty"`
}

func (SessionStartOutput) event() Event { return SessionStart }

type SessionStartSpecificOutput struct {
	AdditionalContext *string `json:"additional_context,omitempty"`
}

type sessionStartSpecificFields SessionStartSpecificOutput

func (o SessionStartSpecificOutput) MarshalJSON() ([]byte, error) {
	return marshalSpecific(SessionStart, sessionStartSpecificFields(o))
}

func (o *SessionStartSpecificOutput) UnmarshalJSON(data []byte) error {
	return unmarshalSpecific(data, SessionStart, (*sessionStartSpecificFields)(o))
}

type SessionEndOutput struct {
	OutputControl
}

func (SessionEndOutput) event() Event { return SessionEnd }

type NotificationOutput struct {
	OutputControl
}

func (NotificationOutput) event() Event { return Notification }

type PermissionRequestOutput[T any] struct {
	OutputControl
	HookSpecificOutput *PermissionRequestSpecificOutput[T] `json:"hook_specific_output,omitempty"`
}

func (PermissionRequestOutput[T]) event() Event { return PermissionRequest }

type PermissionRequestSpecificOutput[T any] struct {
	Decision PermissionRequestDecision[T] `json:"decision"`
}

type permissionRequestSpecificFields[T any] PermissionRequestSpecificOutput[T]

func (o PermissionRequestSpecificOutput[T]) MarshalJSON() ([]byte, error) {
	return marshalSpecific(PermissionRequest, permissionRequestSpecificFields[T](o))
}

func (o *PermissionRequestSpecificOutput[T]) UnmarshalJSON(data []byte) error {
	return unmarshalSpecific(data, PermissionRequest, (*permissionRequestSpecificFields[T])(o))
}

// marshalSpecific encodes a hook_specific_output object with the event tag of
// its own variant as the first key.
func marshalSpecific(event Event, fields any) ([]byte, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	tagged, err := sjson.SetBytes([]byte("{}"), "hook_event_name", string(event))
	if err != nil {
		return nil, err
	}
	rest := bytes.TrimSpace(data)
	if len(rest) < 2 || rest[0] != '{' {
		return nil, fmt.Errorf("hook_specific_output: %s fields are not an object", event)
	}
	if rest = bytes.TrimSpace(rest[1:]); rest[0] == '}' {
		return tagged, nil
	}
	tagged = append(tagged[:len(tagged)-1], ',')
	return append(tagged, rest...), nil
}

func unmarshalSpecific(data []byte, event Event, fields any) error {
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}
	name := gjson.GetBytes(data, "hook_event_name")
	if !name.Exists() {
		return fmt.Errorf("hook_specific_output: missing hook_event_name")
	}
	if Event(name.String()) != event {
		return fmt.Errorf("hook_specific_output: hook_event_name %q does not match %s", name.String(), event)
	}
	return nil
}
