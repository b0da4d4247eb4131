package hooks

import (
	"fmt"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

// secretGuard keeps prompts containing credentials away from the model.
type secretGuard struct{ *deps }

func (h *secretGuard) Invoke(ctx *claude.Context, input claude.UserPromptSubmitInput) claude.Result[claude.UserPromptSubmitOutput] {
	kind, found := findSecret(input.Prompt)
	if !found {
		return claude.ExitCode[claude.UserPromptSubmitOutput](claude.Success)
	}

	ctx.Logger.Warn("Blocked prompt", "secret", kind)
	return claude.JSONOutput(claude.UserPromptSubmitOutput{
		Decision: claude.Ptr(claude.Block),
		Reason:   claude.Ptr(fmt.Sprintf("The prompt looks like it contains a secret (%s). Remove it and try again.", kind)),
	})
}
