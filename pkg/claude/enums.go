package claude

import (
	"fmt"
	"slices"
)

// PermissionMode is the host's permission mode for the session.
type PermissionMode string

const (
	PermissionModeDefault           PermissionMode = "default"
	PermissionModePlan              PermissionMode = "plan"
	PermissionModeAcceptEdits       PermissionMode = "accept_edits"
	PermissionModeBypassPermissions PermissionMode = "bypass_permissions"
)

// PermissionModes returns every known permission mode.
func PermissionModes() []PermissionMode {
	return []PermissionMode{
		PermissionModeDefault,
		PermissionModePlan,
		PermissionModeAcceptEdits,
		PermissionModeBypassPermissions,
	}
}

func (m *PermissionMode) UnmarshalText(text []byte) error {
	return parseEnum(m, string(text), "permission mode", PermissionModes())
}

// SessionStartSource tells why a session started.
type SessionStartSource string

const (
	SessionStartSourceStartup SessionStartSource = "startup"
	SessionStartSourceResume  SessionStartSource = "resume"
	SessionStartSourceClear   SessionStartSource = "clear"
	SessionStartSourceCompact SessionStartSource = "compact"
)

// SessionStartSources returns every known session start source.
func SessionStartSources() []SessionStartSource {
	return []SessionStartSource{
		SessionStartSourceStartup,
		SessionStartSourceResume,
		SessionStartSourceClear,
		SessionStartSourceCompact,
	}
}

func (s *SessionStartSource) UnmarshalText(text []byte) error {
	return parseEnum(s, string(text), "session start source", SessionStartSources())
}

// SessionEndReason tells why a session ended.
type SessionEndReason string

const (
	SessionEndReasonClear           SessionEndReason = "clear"
	SessionEndReasonLogout          SessionEndReason = "logout"
	SessionEndReasonPromptInputExit SessionEndReason = "prompt_input_exit"
	SessionEndReasonOther           SessionEndReason = "other"
)

// SessionEndReasons returns every known session end reason.
func SessionEndReasons() []SessionEndReason {
	return []SessionEndReason{
		SessionEndReasonClear,
		SessionEndReasonLogout,
		SessionEndReasonPromptInputExit,
		SessionEndReasonOther,
	}
}

func (r *SessionEndReason) UnmarshalText(text []byte) error {
	return parseEnum(r, string(text), "session end reason", SessionEndReasons())
}

// PermissionDecision is a PreToolUse verdict on a tool call.
type PermissionDecision string

const (
	PermissionAllow PermissionDecision = "allow"
	PermissionDeny  PermissionDecision = "deny"
	PermissionAsk   PermissionDecision = "ask"
)

// PermissionDecisions returns every known PreToolUse decision.
func PermissionDecisions() []PermissionDecision {
	return []PermissionDecision{PermissionAllow, PermissionDeny, PermissionAsk}
}

func (d *PermissionDecision) UnmarshalText(text []byte) error {
	return parseEnum(d, string(text), "permission decision", PermissionDecisions())
}

// BlockDecision is the decision field of the blocking outputs. Its only value
// is "block"; leave the field nil to let the action proceed.
type BlockDecision string

const Block BlockDecision = "block"

func (d *BlockDecision) UnmarshalText(text []byte) error {
	return parseEnum(d, string(text), "block decision", []BlockDecision{Block})
}

// PermissionBehavior discriminates a PermissionRequestDecision.
type PermissionBehavior string

const (
	BehaviorAllow PermissionBehavior = "allow"
	BehaviorDeny  PermissionBehavior = "deny"
)

func (b *PermissionBehavior) UnmarshalText(text []byte) error {
	return parseEnum(b, string(text), "permission behavior", []PermissionBehavior{BehaviorAllow, BehaviorDeny})
}

func parseEnum[E ~string](dst *E, s, kind string, known []E) error {
	v := E(s)
	if !slices.Contains(known, v) {
		return fmt.Errorf("unknown %s %q", kind, s)
	}
	*dst = v
	return nil
}
