// Package installer registers the hookkit binary in the host's settings.json.
package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamikazebr/claude-hookkit/internal/fsutil"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// HookTimeout is the timeout, in seconds, of every installed hook entry.
const HookTimeout = 10

// SubCommand is appended to the binary path in installed entries.
const SubCommand = "hook"

// DefaultSettingsPath returns ~/.claude/settings.json of the real user.
func DefaultSettingsPath() (string, error) {
	_, home, err := fsutil.ActualUser()
	if err != nil {
		return "", fmt.Errorf("failed to get user directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// HookCommand is the command line installed for binPath.
func HookCommand(binPath string) string {
	return binPath + " " + SubCommand
}

// isOwnCommand matches entries installed by any copy of this binary, so an
// uninstall still works after the binary moved.
func isOwnCommand(command, ours string) bool {
	if command == ours {
		return true
	}
	bin, sub, ok := strings.Cut(command, " ")
	oursBin, _, _ := strings.Cut(ours, " ")
	return ok && sub == SubCommand && filepath.Base(bin) == filepath.Base(oursBin)
}

// readSettings returns the settings document, or an empty object when the
// file does not exist.
func readSettings(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("invalid JSON in settings: %s", path)
	}
	if hooks := gjson.GetBytes(data, "hooks"); hooks.Exists() && !hooks.IsObject() {
		return nil, fmt.Errorf("invalid hooks format in settings")
	}
	return data, nil
}

func writeSettings(path string, data []byte) error {
	if err := fsutil.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return fsutil.WriteFile(path, pretty.Pretty(data), 0o644)
}
