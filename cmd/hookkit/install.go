package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/kamikazebr/claude-hookkit/internal/installer"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	binPath      string
	eventNames   []string
	assumeYes    bool
)

func allEventNames() []string {
	var names []string
	for _, e := range claude.AllEvents() {
		names = append(names, e.String())
	}
	return names
}

func resolveSettings() (string, error) {
	if settingsPath != "" {
		return settingsPath, nil
	}
	return installer.DefaultSettingsPath()
}

// resolveBinary returns the absolute path of this binary, so the installed
// entries keep working from any directory.
func resolveBinary() (string, error) {
	if binPath != "" {
		return binPath, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return execPath, nil
}

func confirm(cmd *cobra.Command, question string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (yes/no): ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

var installHooksCmd = &cobra.Command{
	Use:   "install-hooks",
	Short: "Install Claude Code hooks",
	Long: heredoc.Doc(`
		Install Claude Code hooks.

		This will:
		  1. Create a backup of the existing settings.json
		  2. Add a "hookkit hook" entry for each selected event
		  3. Keep every other setting and hook untouched

		Safe to run multiple times.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		events := make([]claude.Event, 0, len(eventNames))
		for _, name := range eventNames {
			e, err := claude.ParseEvent(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			events = append(events, e)
		}

		settings, err := resolveSettings()
		if err != nil {
			return err
		}
		bin, err := resolveBinary()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "🔧 Claude Code Hooks - Installation")
		fmt.Fprintf(out, "   Binary: %s\n", bin)
		fmt.Fprintf(out, "   Config: %s\n", settings)
		fmt.Fprintf(out, "   Hooks: %s\n\n", strings.Join(eventNames, ", "))

		backup, err := installer.Install(settings, bin, events)
		if err != nil {
			return err
		}
		if backup != "" {
			fmt.Fprintf(out, "📦 Backup: %s\n", backup)
		}

		fmt.Fprintln(out, "✅ Installation completed successfully!")
		if cfg, err := loadConfig(); err == nil && !cfg.LogDisabled {
			fmt.Fprintf(out, "\nLogs: tail -f %s\n", cfg.LogFile)
		}
		return nil
	},
}

var uninstallHooksCmd = &cobra.Command{
	Use:   "uninstall-hooks",
	Short: "Remove Claude Code hooks (preserves other configs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, "Remove hookkit hooks?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}

		settings, err := resolveSettings()
		if err != nil {
			return err
		}
		bin, err := resolveBinary()
		if err != nil {
			return err
		}

		backup, err := installer.Uninstall(settings, bin)
		if err != nil {
			return err
		}
		if backup == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No hooks installed")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Hooks removed!")
		fmt.Fprintf(cmd.OutOrStdout(), "   Backup: %s\n", backup)
		return nil
	},
}

var restoreHooksCmd = &cobra.Command{
	Use:   "restore-hooks",
	Short: "Restore hooks configuration from backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings()
		if err != nil {
			return err
		}

		backups, err := installer.ListBackups(settings)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return installer.ErrNoBackup
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available backups:")
		for i, b := range backups {
			fmt.Fprintf(out, "  %d. %s\n", i+1, filepath.Base(b))
		}

		latest := backups[len(backups)-1]
		if !confirm(cmd, fmt.Sprintf("\nRestore %s?", filepath.Base(latest))) {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}

		// Back up the current state before restoring.
		if _, err := installer.BackupSettings(settings); err != nil {
			return err
		}
		if err := installer.RestoreFromBackup(latest, settings); err != nil {
			return err
		}

		fmt.Fprintln(out, "✅ Configuration restored!")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{installHooksCmd, uninstallHooksCmd, restoreHooksCmd} {
		c.Flags().StringVar(&settingsPath, "settings", "", "Path to Claude Code settings.json (default ~/.claude/settings.json)")
	}
	for _, c := range []*cobra.Command{installHooksCmd, uninstallHooksCmd} {
		c.Flags().StringVar(&binPath, "bin", "", "Binary path used in the hook command (default: this executable)")
	}
	installHooksCmd.Flags().StringSliceVar(&eventNames, "events", allEventNames(), "Events to install hooks for")
	uninstallHooksCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	restoreHooksCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(installHooksCmd, uninstallHooksCmd, restoreHooksCmd)
}
