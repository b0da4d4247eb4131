package claude

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Decode parses a stdin payload into I. Unknown keys are ignored. It fails with
// an *InvalidInputError when the payload is malformed, a required key is
// missing or null, an enumeration holds an unknown value, or hook_event_name
// does not match the event of I.
func Decode[I Input](data []byte) (I, error) {
	var input I
	if err := json.Unmarshal(data, &input); err != nil {
		return input, newInvalidInputError(err, data)
	}

	for _, key := range input.requiredKeys() {
		if v := gjson.GetBytes(data, key); !v.Exists() || v.Type == gjson.Null {
			return input, newInvalidInputError(fmt.Errorf("missing required field %q", key), data)
		}
	}

	if got, want := input.Common().HookEventName, input.event(); got != want {
		return input, newInvalidInputError(fmt.Errorf("hook_event_name is %q, expected %q", got, want), data)
	}
	return input, nil
}

// Encode renders an output in the wire format. Nil optional fields are left
// out entirely.
func Encode[O Output](output O) ([]byte, error) {
	data, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("encode %s output: %w", output.event(), err)
	}
	return data, nil
}

// DecodeOutput parses an encoded output. Hooks never need it; it exists for
// tooling and tests that inspect what a hook wrote.
func DecodeOutput[O Output](data []byte) (O, error) {
	var output O
	if err := json.Unmarshal(data, &output); err != nil {
		return output, fmt.Errorf("decode %s output: %w", output.event(), err)
	}
	return output, nil
}

// PeekEvent reads hook_event_name from a payload without decoding the rest.
// Dispatchers serving several events from one executable use it to pick the
// input type.
func PeekEvent(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return "", newInvalidInputError(errors.New("payload is not valid JSON"), data)
	}
	name := gjson.GetBytes(data, "hook_event_name")
	if !name.Exists() {
		return "", newInvalidInputError(errors.New(`missing required field "hook_event_name"`), data)
	}
	event, err := ParseEvent(name.String())
	if err != nil {
		return "", newInvalidInputError(err, data)
	}
	return event, nil
}
