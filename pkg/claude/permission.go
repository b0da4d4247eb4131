package claude

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// PermissionRequestDecision is the verdict of a PermissionRequest hook: either
// allow (optionally rewriting the tool input) or deny (optionally with a message
// and an interrupt flag). Build it with Allow or Deny.
//
// On the wire the variant is flattened next to a "behavior" key:
//
//	{"behavior":"allow","updated_input":{...}}
//	{"behavior":"deny","message":"...","interrupt":true}
type PermissionRequestDecision[T any] struct {
	behavior     PermissionBehavior
	updatedInput *T
	message      *string
	interrupt    *bool
}

// Allow lets the tool call proceed. A non-nil updatedInput replaces the tool
// parameters.
func Allow[T any](updatedInput *T) PermissionRequestDecision[T] {
	return PermissionRequestDecision[T]{behavior: BehaviorAllow, updatedInput: updatedInput}
}

// Deny rejects the tool call. message is shown to the agent; interrupt stops
// the agent entirely.
func Deny[T any](message *string, interrupt *bool) PermissionRequestDecision[T] {
	return PermissionRequestDecision[T]{behavior: BehaviorDeny, message: message, interrupt: interrupt}
}

func (d PermissionRequestDecision[T]) Behavior() PermissionBehavior {
	return d.behavior
}

// UpdatedInput is only meaningful for allow decisions.
func (d PermissionRequestDecision[T]) UpdatedInput() *T {
	return d.updatedInput
}

// Message is only meaningful for deny decisions.
func (d PermissionRequestDecision[T]) Message() *string {
	return d.message
}

// Interrupt is only meaningful for deny decisions.
func (d PermissionRequestDecision[T]) Interrupt() *bool {
	return d.interrupt
}

var errNoBehavior = errors.New("permission request decision has no behavior; use Allow or Deny")

func (d PermissionRequestDecision[T]) MarshalJSON() ([]byte, error) {
	switch d.behavior {
	case BehaviorAllow:
		return json.Marshal(struct {
			Behavior     PermissionBehavior `json:"behavior"`
			UpdatedInput *T                 `json:"updated_input,omitempty"`
		}{d.behavior, d.updatedInput})
	case BehaviorDeny:
		return json.Marshal(struct {
			Behavior  PermissionBehavior `json:"behavior"`
			Message   *string            `json:"message,omitempty"`
			Interrupt *bool              `json:"interrupt,omitempty"`
		}{d.behavior, d.message, d.interrupt})
	case "":
		return nil, errNoBehavior
	default:
		return nil, fmt.Errorf("unknown permission behavior %q", d.behavior)
	}
}

func (d *PermissionRequestDecision[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNoBehavior
	}
	var head struct {
		Behavior *PermissionBehavior `json:"behavior"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Behavior == nil {
		return errNoBehavior
	}

	switch *head.Behavior {
	case BehaviorAllow:
		var allow struct {
			UpdatedInput *T `json:"updated_input"`
		}
		if err := json.Unmarshal(data, &allow); err != nil {
			return err
		}
		*d = Allow(allow.UpdatedInput)
	case BehaviorDeny:
		var deny struct {
			Message   *string `json:"message"`
			Interrupt *bool   `json:"interrupt"`
		}
		if err := json.Unmarshal(data, &deny); err != nil {
			return err
		}
		*d = Deny[T](deny.Message, deny.Interrupt)
	}
	return nil
}
