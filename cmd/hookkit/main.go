package main

import (
	"context"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/kamikazebr/claude-hookkit/internal/config"
	"github.com/kamikazebr/claude-hookkit/pkg/version"
	"github.com/spf13/cobra"
)

const appName = "hookkit"

var configDir string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Typed Claude Code hooks",
	Long: heredoc.Doc(`
		hookkit runs typed hooks for Claude Code lifecycle events.

		Claude Code starts "hookkit hook" once per event with a JSON payload on
		stdin. The built-in hooks guard shell commands, keep secrets out of
		prompts and send desktop notifications when Claude is done or waiting.
	`),
	Example: heredoc.Doc(`
		# Register the hooks for every event
		hookkit install-hooks

		# Only notify when Claude stops or needs attention
		hookkit install-hooks --events Stop,Notification

		# Print the JSON Schema of the PreToolUse payload
		hookkit schema PreToolUse
	`),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.hookkit)")
}

// loadConfig reads the configuration from --config-dir or ~/.hookkit.
func loadConfig() (*config.Config, error) {
	if configDir == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	return config.LoadFrom(configDir, envOS())
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Module()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
