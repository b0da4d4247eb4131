package hooks

import (
	"fmt"
	"strings"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

type sessionStartHook struct{ *deps }

func (h *sessionStartHook) Invoke(ctx *claude.Context, input claude.SessionStartInput) claude.Result[claude.SessionStartOutput] {
	project := projectName(ctx, input.Cwd)
	ctx.Logger.Info("Session started", "project", project, "source", input.Source)

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\nSession started via %s.", project, input.Source)
	if sessions := h.sessions(input.Cwd); len(sessions) > 0 {
		fmt.Fprintf(&b, "\nAttached tmux sessions: %s", strings.Join(sessions, ", "))
	}

	return claude.JSONOutput(claude.SessionStartOutput{
		HookSpecificOutput: &claude.SessionStartSpecificOutput{
			AdditionalContext: claude.Ptr(b.String()),
		},
	})
}

type sessionEndHook struct{ *deps }

func (h *sessionEndHook) Invoke(ctx *claude.Context, input claude.SessionEndInput) claude.Result[claude.SessionEndOutput] {
	ctx.Logger.Info("Session ended", "session", input.SessionID, "reason", input.Reason)
	return claude.ExitCode[claude.SessionEndOutput](claude.Success)
}
