package main

import (
	"fmt"
	"os"

	"github.com/kamikazebr/claude-hookkit/internal/hooks"
	"github.com/kamikazebr/claude-hookkit/internal/notifier"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
	"github.com/kamikazebr/claude-hookkit/pkg/env"
	"github.com/spf13/cobra"
)

// Replaced in tests.
var (
	exit        = os.Exit
	envOS       = env.OS
	newNotifier = notifier.New
)

// hook command (internal)
var hookCmd = &cobra.Command{
	Use:    "hook",
	Short:  "Execute hooks (internal use by Claude Code)",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		r := &claude.Runner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Env:    envOS(),
		}
		set := hooks.Builtin(cfg, newNotifier())
		code, err := claude.Protect(func() (int, error) {
			return hooks.Dispatch(r, set)
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s hook: %v\n", appName, err)
		}
		if code != 0 {
			exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
