// Package hooks holds the built-in hooks of the hookkit binary and the
// dispatcher that routes a payload to the hook for its event.
package hooks

import (
	"encoding/json"
	"path/filepath"

	"github.com/kamikazebr/claude-hookkit/internal/config"
	"github.com/kamikazebr/claude-hookkit/internal/notifier"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

// Set has one hook per event.
type Set struct {
	PreToolUse        claude.PreToolUseHook[BashInput]
	PostToolUse       claude.PostToolUseHook[BashInput, json.RawMessage]
	PermissionRequest claude.PermissionRequestHook[BashInput]
	Notification      claude.NotificationHook
	UserPromptSubmit  claude.UserPromptSubmitHook
	Stop              claude.StopHook
	SubagentStop      claude.SubagentStopHook
	SessionStart      claude.SessionStartHook
	SessionEnd        claude.SessionEndHook
}

// deps are shared by the built-in hooks.
type deps struct {
	log      claude.LogConfig
	notifier notifier.Notifier
	guard    *Guard
	sessions func(cwd string) []string
}

func (d *deps) Logging() claude.LogConfig {
	return d.log
}

// Builtin returns the built-in hooks configured by cfg. Notifications go to n
// unless cfg disables them.
func Builtin(cfg *config.Config, n notifier.Notifier) *Set {
	d := &deps{
		log:      claude.LogToFile(cfg.LogFile),
		notifier: n,
		guard:    NewGuard(cfg.BlockedCommands),
		sessions: tmuxSessions,
	}
	if cfg.LogDisabled {
		d.log = claude.LoggingDisabled()
	}
	if !cfg.Notify || n == nil {
		d.notifier = notifier.Nop{}
	}
	return newSet(d)
}

func newSet(d *deps) *Set {
	return &Set{
		PreToolUse:        &bashGuard{d},
		PostToolUse:       &bashResultCheck{d},
		PermissionRequest: &permissionGuard{d},
		Notification:      &notificationHook{d},
		UserPromptSubmit:  &secretGuard{d},
		Stop:              &stopHook{d},
		SubagentStop:      &subagentStopHook{d},
		SessionStart:      &sessionStartHook{d},
		SessionEnd:        &sessionEndHook{d},
	}
}

// projectName prefers the project root passed by the host over cwd.
func projectName(ctx *claude.Context, cwd string) string {
	if dir, ok := ctx.ProjectDir(); ok {
		return filepath.Base(dir)
	}
	if cwd == "" {
		return ""
	}
	return filepath.Base(cwd)
}
