package hooks

import (
	"fmt"
	"strings"

	"github.com/kamikazebr/claude-hookkit/internal/notifier"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

type stopHook struct{ *deps }

func (h *stopHook) Invoke(ctx *claude.Context, input claude.StopInput) claude.Result[claude.StopOutput] {
	// Already continuing because of a stop hook; do not notify twice.
	if input.StopHookActive {
		ctx.Logger.Debug("Stop hook already active")
		return claude.ExitCode[claude.StopOutput](claude.Success)
	}

	project := projectName(ctx, input.Cwd)
	sessions := strings.Join(h.sessions(input.Cwd), ",")
	if sessions != "" {
		ctx.Logger.Info("Stop event", "project", project, "tmux", sessions)
	} else {
		ctx.Logger.Info("Stop event", "project", project)
	}

	message := fmt.Sprintf("Waiting for response\nProject: %s", project)
	if sessions != "" {
		message = fmt.Sprintf("Waiting for response\nProject: %s\nSessions: %s", project, sessions)
	}

	notifTitle := "💬 CC - Response Ready"
	if project != "" {
		notifTitle = fmt.Sprintf("💬 CC - Response Ready [%s]", project)
	}

	if err := h.notifier.Send(notifTitle, message, notifier.UrgencyNormal); err != nil {
		ctx.Logger.Error("Failed to send notification", "error", err)
	}

	return claude.JSONOutput(claude.StopOutput{
		OutputControl: claude.OutputControl{Continue: claude.Ptr(true)},
	})
}

type subagentStopHook struct{ *deps }

func (h *subagentStopHook) Invoke(ctx *claude.Context, input claude.SubagentStopInput) claude.Result[claude.SubagentStopOutput] {
	ctx.Logger.Info("Subagent stopped", "session", input.SessionID, "stop_hook_active", input.StopHookActive)
	return claude.ExitCode[claude.SubagentStopOutput](claude.Success)
}
