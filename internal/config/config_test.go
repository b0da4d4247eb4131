package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamikazebr/claude-hookkit/pkg/env"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := LoadFrom(dir, env.Map{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "logs", "claude-hooks.log"), cfg.LogFile)
	require.False(t, cfg.LogDisabled)
	require.True(t, cfg.Notify)
	require.Empty(t, cfg.BlockedCommands)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "HOOKKIT_LOG_FILE=hooks/debug.log\n" +
		"HOOKKIT_LOG_DISABLED=true\n" +
		"HOOKKIT_NOTIFY=false\n" +
		"HOOKKIT_BLOCKED_COMMANDS=\"terraform destroy, git push --force ,,\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte(content), 0o600))

	cfg, err := LoadFrom(dir, nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "hooks", "debug.log"), cfg.LogFile)
	require.True(t, cfg.LogDisabled)
	require.False(t, cfg.Notify)
	require.Equal(t, []string{"terraform destroy", "git push --force"}, cfg.BlockedCommands)
}

func TestLoadFrom_EnvironmentWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("HOOKKIT_NOTIFY=false\nHOOKKIT_LOG_FILE=/var/log/a.log\n"), 0o600))

	cfg, err := LoadFrom(dir, env.Map{KeyNotify: "1", KeyLogFile: "/tmp/b.log"})
	require.NoError(t, err)
	require.True(t, cfg.Notify)
	require.Equal(t, "/tmp/b.log", cfg.LogFile)
}

func TestLoadFrom_InvalidBool(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("HOOKKIT_NOTIFY=sometimes\n"), 0o600))

	_, err := LoadFrom(dir, nil)
	require.ErrorContains(t, err, KeyNotify)

	_, err = LoadFrom(t.TempDir(), env.Map{KeyLogDisabled: "nope"})
	require.ErrorContains(t, err, "invalid environment")
}
