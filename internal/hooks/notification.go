package hooks

import (
	"fmt"
	"strings"

	"github.com/kamikazebr/claude-hookkit/internal/notifier"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
)

// notificationKind maps a host notification message to how it is shown.
type notificationKind struct {
	match   string
	emoji   string
	title   string
	message string
	urgency notifier.Urgency
}

var notificationKinds = []notificationKind{
	{match: "needs your permission", emoji: "🔐", title: "Permission Required", message: "Needs attention", urgency: notifier.UrgencyCritical},
	{match: "waiting for your input", emoji: "💤", title: "Still waiting", message: "Waiting for input", urgency: notifier.UrgencyCritical},
}

type notificationHook struct{ *deps }

func (h *notificationHook) Invoke(ctx *claude.Context, input claude.NotificationInput) claude.Result[claude.NotificationOutput] {
	project := projectName(ctx, input.Cwd)
	ctx.Logger.Info("Notification", "project", project, "message", input.Message)

	emoji, title, message, urgency := "ℹ️", "Notification", input.Message, notifier.UrgencyNormal
	lower := strings.ToLower(input.Message)
	for _, k := range notificationKinds {
		if strings.Contains(lower, k.match) {
			emoji, title, message, urgency = k.emoji, k.title, k.message, k.urgency
			break
		}
	}

	notifTitle := fmt.Sprintf("%s CC - %s", emoji, title)
	if project != "" {
		notifTitle = fmt.Sprintf("%s CC - %s [%s]", emoji, title, project)
	}

	if err := h.notifier.Send(notifTitle, message, urgency); err != nil {
		ctx.Logger.Error("Failed to send notification", "error", err)
	}

	// Empty object: let the host continue.
	return claude.JSONOutput(claude.NotificationOutput{})
}
