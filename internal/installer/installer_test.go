package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const bin = "/usr/local/bin/hookkit"

func readJSON(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(data))
	return string(data)
}

func TestInstall_NewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".claude", "settings.json")
	backup, err := Install(path, bin, []claude.Event{claude.Stop, claude.PreToolUse})
	require.NoError(t, err)
	require.Empty(t, backup)

	require.JSONEq(t, `{"hooks":{
		"Stop":[{"hooks":[{"type":"command","command":"/usr/local/bin/hookkit hook","timeout":10}]}],
		"PreToolUse":[{"hooks":[{"type":"command","command":"/usr/local/bin/hookkit hook","timeout":10}]}]
	}}`, readJSON(t, path))
}

func TestInstall_PreservesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	original := `{
  "model": "opus",
  "hooks": {
    "Stop": [{"hooks": [{"type": "command", "command": "say done"}]}]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	backup, err := Install(path, bin, []claude.Event{claude.Stop})
	require.NoError(t, err)
	require.NotEmpty(t, backup)
	require.Equal(t, original, readJSON(t, backup))

	settings := readJSON(t, path)
	require.Equal(t, "opus", gjson.Get(settings, "model").String())
	require.Equal(t, int64(2), gjson.Get(settings, "hooks.Stop.#").Int())
	require.Equal(t, "say done", gjson.Get(settings, "hooks.Stop.0.hooks.0.command").String())
	require.Equal(t, bin+" hook", gjson.Get(settings, "hooks.Stop.1.hooks.0.command").String())
}

func TestInstall_Idempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	_, err := Install(path, bin, claude.AllEvents())
	require.NoError(t, err)
	first := readJSON(t, path)

	backup, err := Install(path, bin, claude.AllEvents())
	require.NoError(t, err)
	require.Empty(t, backup)
	require.Equal(t, first, readJSON(t, path))

	for _, event := range claude.AllEvents() {
		require.Equal(t, int64(1), gjson.Get(first, "hooks."+string(event)+".#").Int(), event)
	}
}

func TestInstall_UpdatesMovedBinary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	_, err := Install(path, "/old/path/hookkit", []claude.Event{claude.Stop, claude.Notification})
	require.NoError(t, err)

	backup, err := Install(path, bin, []claude.Event{claude.Stop, claude.Notification, claude.SessionEnd})
	require.NoError(t, err)
	require.NotEmpty(t, backup)

	settings := readJSON(t, path)
	for _, event := range []string{"Stop", "Notification", "SessionEnd"} {
		require.Equal(t, int64(1), gjson.Get(settings, "hooks."+event+".#").Int(), event)
		require.Equal(t, bin+" hook", gjson.Get(settings, "hooks."+event+".0.hooks.0.command").String(), event)
	}

	backup, err = Install(path, bin, []claude.Event{claude.Stop})
	require.NoError(t, err)
	require.Empty(t, backup)
}

func TestInstall_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte("{not json"), 0o644))
	_, err := Install(invalid, bin, []claude.Event{claude.Stop})
	require.ErrorContains(t, err, "invalid JSON")

	badHooks := filepath.Join(dir, "bad-hooks.json")
	require.NoError(t, os.WriteFile(badHooks, []byte(`{"hooks":[]}`), 0o644))
	_, err = Install(badHooks, bin, []claude.Event{claude.Stop})
	require.ErrorContains(t, err, "invalid hooks format")

	badEvent := filepath.Join(dir, "bad-event.json")
	require.NoError(t, os.WriteFile(badEvent, []byte(`{"hooks":{"Stop":"nope"}}`), 0o644))
	_, err = Install(badEvent, bin, []claude.Event{claude.Stop})
	require.ErrorContains(t, err, "invalid Stop hooks")

	_, err = Install(filepath.Join(dir, "x.json"), bin, []claude.Event{"PreCompact"})
	require.ErrorContains(t, err, "unknown hook event")
}

func TestUninstall_RemovesOnlyOwnEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	original := `{
  "hooks": {
    "Stop": [
      {"hooks": [{"type": "command", "command": "say done"}, {"type": "command", "command": "/old/path/hookkit hook", "timeout": 10}]}
    ],
    "Notification": [
      {"hooks": [{"type": "command", "command": "/usr/local/bin/hookkit hook", "timeout": 10}]}
    ],
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "lint-guard"}]}
    ]
  },
  "theme": "dark"
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	backup, err := Uninstall(path, bin)
	require.NoError(t, err)
	require.NotEmpty(t, backup)

	require.JSONEq(t, `{
		"hooks": {
			"Stop": [{"hooks": [{"type": "command", "command": "say done"}]}],
			"PreToolUse": [{"matcher": "Bash", "hooks": [{"type": "command", "command": "lint-guard"}]}]
		},
		"theme": "dark"
	}`, readJSON(t, path))
}

func TestUninstall_NothingToRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o644))

	backup, err := Uninstall(path, bin)
	require.NoError(t, err)
	require.Empty(t, backup)
	require.Equal(t, `{"theme":"dark"}`, readJSON(t, path))

	backups, err := ListBackups(path)
	require.NoError(t, err)
	require.Empty(t, backups)
}

func TestInstallUninstall_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hooks":{"Stop":[{"hooks":[{"type":"command","command":"say done"}]}]}}`), 0o644))

	_, err := Install(path, bin, claude.AllEvents())
	require.NoError(t, err)
	_, err = Uninstall(path, bin)
	require.NoError(t, err)

	require.JSONEq(t, `{"hooks":{"Stop":[{"hooks":[{"type":"command","command":"say done"}]}]}}`, readJSON(t, path))
}

func TestBackupSettings_BackToBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	var created []string
	for i := 0; i < 20; i++ {
		content := fmt.Sprintf(`{"v":%d}`, i)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		backup, err := BackupSettings(path)
		require.NoError(t, err)
		created = append(created, backup)
	}

	backups, err := ListBackups(path)
	require.NoError(t, err)
	require.Equal(t, created, backups)
	for i, backup := range created {
		require.Equal(t, fmt.Sprintf(`{"v":%d}`, i), readJSON(t, backup))
	}
}

func TestBackupSettings_MissingFile(t *testing.T) {
	t.Parallel()

	backup, err := BackupSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	require.Empty(t, backup)
}

func TestRestoreLatest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	_, err := RestoreLatest(path)
	require.ErrorIs(t, err, ErrNoBackup)

	require.NoError(t, os.WriteFile(path+".backup_20240101_000000.000", []byte(`{"v":1}`), 0o644))
	require.NoError(t, os.WriteFile(path+".backup_20250101_000000.000", []byte(`{"v":2}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"v":3}`), 0o644))

	restored, err := RestoreLatest(path)
	require.NoError(t, err)
	require.Equal(t, path+".backup_20250101_000000.000", restored)
	require.Equal(t, `{"v":2}`, readJSON(t, path))
}

func TestIsOwnCommand(t *testing.T) {
	t.Parallel()

	ours := HookCommand(bin)
	require.True(t, isOwnCommand(ours, ours))
	require.True(t, isOwnCommand("/home/me/go/bin/hookkit hook", ours))
	require.False(t, isOwnCommand("/home/me/go/bin/hookkit version", ours))
	require.False(t, isOwnCommand("other hook", ours))
	require.False(t, isOwnCommand("hookkit", ours))
}
