// Package schema describes the hook input payloads as JSON Schema.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

// ToolInput stands in for the tool-specific tool_input and tool_response
// objects, whose shape depends on the tool.
type ToolInput map[string]any

var inputs = map[claude.Event]any{
	claude.PreToolUse:        claude.PreToolUseInput[ToolInput]{},
	claude.PostToolUse:       claude.PostToolUseInput[ToolInput, json.RawMessage]{},
	claude.PermissionRequest: claude.PermissionRequestInput[ToolInput]{},
	claude.Notification:      claude.NotificationInput{},
	claude.UserPromptSubmit:  claude.UserPromptSubmitInput{},
	claude.Stop:              claude.StopInput{},
	claude.SubagentStop:      claude.SubagentStopInput{},
	claude.SessionStart:      claude.SessionStartInput{},
	claude.SessionEnd:        claude.SessionEndInput{},
}

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	rawJSONType = reflect.TypeOf(json.RawMessage{})
)

func stringEnum[E ~string](values []E) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string"}
	for _, v := range values {
		s.Enum = append(s.Enum, string(v))
	}
	return s
}

// mapper covers the types the reflector cannot infer from struct tags.
func mapper(event claude.Event) func(reflect.Type) *jsonschema.Schema {
	return func(t reflect.Type) *jsonschema.Schema {
		switch t {
		case uuidType:
			return &jsonschema.Schema{Type: "string", Format: "uuid"}
		case rawJSONType:
			return &jsonschema.Schema{}
		case reflect.TypeOf(claude.Event("")):
			// Every payload carries its own event name.
			return &jsonschema.Schema{Type: "string", Const: string(event)}
		case reflect.TypeOf(claude.PermissionMode("")):
			return stringEnum(claude.PermissionModes())
		case reflect.TypeOf(claude.SessionStartSource("")):
			return stringEnum(claude.SessionStartSources())
		case reflect.TypeOf(claude.SessionEndReason("")):
			return stringEnum(claude.SessionEndReasons())
		}
		return nil
	}
}

// ForEvent returns the JSON Schema of the stdin payload for event.
func ForEvent(event claude.Event) (*jsonschema.Schema, error) {
	input, ok := inputs[event]
	if !ok {
		return nil, fmt.Errorf("unknown hook event %q", event)
	}

	r := &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
		Mapper:                    mapper(event),
	}
	s := r.Reflect(input)
	s.Title = string(event)
	s.Description = fmt.Sprintf("Payload written to the hook's stdin for the %s event.", event)
	return s, nil
}

// JSON returns the indented schema of event.
func JSON(event claude.Event) ([]byte, error) {
	s, err := ForEvent(event)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}
