package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

const exitFailure = 1

// Dispatch reads one payload from r.Stdin and runs the hook in set that
// matches its hook_event_name.
func Dispatch(r *claude.Runner, set *Set) (int, error) {
	if r.StdinIsTerminal() {
		return exitFailure, claude.ErrInvalidInvocation
	}

	raw, err := io.ReadAll(r.Stdin)
	if err != nil {
		return exitFailure, fmt.Errorf("failed to read stdin: %w", err)
	}

	event, err := claude.PeekEvent(raw)
	if err != nil {
		return exitFailure, err
	}

	// The payload is replayed from memory.
	sub := *r
	sub.Stdin = bytes.NewReader(raw)
	sub.IsTerminal = func(io.Reader) bool { return false }

	switch event {
	case claude.PreToolUse:
		return claude.Run[claude.PreToolUseInput[BashInput], claude.PreToolUseOutput[BashInput]](&sub, set.PreToolUse)
	case claude.PostToolUse:
		return claude.Run[claude.PostToolUseInput[BashInput, json.RawMessage], claude.PostToolUseOutput](&sub, set.PostToolUse)
	case claude.PermissionRequest:
		return claude.Run[claude.PermissionRequestInput[BashInput], claude.PermissionRequestOutput[BashInput]](&sub, set.PermissionRequest)
	case claude.Notification:
		return claude.Run[claude.NotificationInput, claude.NotificationOutput](&sub, set.Notification)
	case claude.UserPromptSubmit:
		return claude.Run[claude.UserPromptSubmitInput, claude.UserPromptSubmitOutput](&sub, set.UserPromptSubmit)
	case claude.Stop:
		return claude.Run[claude.StopInput, claude.StopOutput](&sub, set.Stop)
	case claude.SubagentStop:
		return claude.Run[claude.SubagentStopInput, claude.SubagentStopOutput](&sub, set.SubagentStop)
	case claude.SessionStart:
		return claude.Run[claude.SessionStartInput, claude.SessionStartOutput](&sub, set.SessionStart)
	case claude.SessionEnd:
		return claude.Run[claude.SessionEndInput, claude.SessionEndOutput](&sub, set.SessionEnd)
	default:
		return exitFailure, fmt.Errorf("no hook for event %s", event)
	}
}
