package hooks

import (
	"encoding/json"
	"fmt"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

const maxContextLen = 2000

// bashGuard denies dangerous shell commands and asks before sudo.
type bashGuard struct{ *deps }

func (h *bashGuard) Invoke(ctx *claude.Context, input claude.PreToolUseInput[BashInput]) claude.Result[claude.PreToolUseOutput[BashInput]] {
	if input.ToolName != BashTool || input.ToolInput == nil {
		return claude.ExitCode[claude.PreToolUseOutput[BashInput]](claude.Success)
	}
	command := input.ToolInput.Command

	if reason, denied := h.guard.Denied(command); denied {
		ctx.Logger.Warn("Denied command", "command", command, "reason", reason)
		return claude.JSONOutput(claude.PreToolUseOutput[BashInput]{
			HookSpecificOutput: &claude.PreToolUseSpecificOutput[BashInput]{
				PermissionDecision:       claude.Ptr(claude.PermissionDeny),
				PermissionDecisionReason: claude.Ptr("Blocked: " + reason),
			},
		})
	}

	if h.guard.NeedsConfirmation(command) {
		ctx.Logger.Info("Asking for confirmation", "command", command)
		return claude.JSONOutput(claude.PreToolUseOutput[BashInput]{
			HookSpecificOutput: &claude.PreToolUseSpecificOutput[BashInput]{
				PermissionDecision:       claude.Ptr(claude.PermissionAsk),
				PermissionDecisionReason: claude.Ptr("Command runs with sudo"),
			},
		})
	}

	return claude.ExitCode[claude.PreToolUseOutput[BashInput]](claude.Success)
}

// permissionGuard answers permission dialogs for dangerous commands so the
// user is never asked about them. Everything else falls through to the host.
type permissionGuard struct{ *deps }

func (h *permissionGuard) Invoke(ctx *claude.Context, input claude.PermissionRequestInput[BashInput]) claude.Result[claude.PermissionRequestOutput[BashInput]] {
	if input.ToolName != BashTool || input.ToolInput == nil {
		return claude.ExitCode[claude.PermissionRequestOutput[BashInput]](claude.Success)
	}

	reason, denied := h.guard.Denied(input.ToolInput.Command)
	if !denied {
		return claude.ExitCode[claude.PermissionRequestOutput[BashInput]](claude.Success)
	}

	ctx.Logger.Warn("Denied permission request", "command", input.ToolInput.Command, "reason", reason)
	return claude.JSONOutput(claude.PermissionRequestOutput[BashInput]{
		HookSpecificOutput: &claude.PermissionRequestSpecificOutput[BashInput]{
			Decision: claude.Deny[BashInput](
				claude.Ptr(fmt.Sprintf("Blocked dangerous command: %s", reason)),
				claude.Ptr(true),
			),
		},
	})
}

// bashResultCheck feeds stderr back to the model and blocks after an
// interrupted command.
type bashResultCheck struct{ *deps }

func (h *bashResultCheck) Invoke(ctx *claude.Context, input claude.PostToolUseInput[BashInput, json.RawMessage]) claude.Result[claude.PostToolUseOutput] {
	if input.ToolName != BashTool {
		return claude.ExitCode[claude.PostToolUseOutput](claude.Success)
	}

	res, ok := parseBashResult(input.ToolResponse)
	if !ok {
		ctx.Logger.Debug("Bash response is not an object")
		return claude.ExitCode[claude.PostToolUseOutput](claude.Success)
	}

	if res.Interrupted {
		return claude.JSONOutput(claude.PostToolUseOutput{
			Decision: claude.Ptr(claude.Block),
			Reason:   claude.Ptr("The command was interrupted before it finished"),
		})
	}

	if res.Stderr != "" {
		return claude.JSONOutput(claude.PostToolUseOutput{
			HookSpecificOutput: &claude.PostToolUseSpecificOutput{
				AdditionalContext: claude.Ptr("The command wrote to stderr:\n" + truncate(res.Stderr, maxContextLen)),
			},
		})
	}

	return claude.ExitCode[claude.PostToolUseOutput](claude.Success)
}
