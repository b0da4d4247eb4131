package installer

import (
	"fmt"

	"github.com/kamikazebr/claude-hookkit/pkg/claude"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type hookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout"`
}

// hookGroup has no matcher, so tool events run for every tool.
type hookGroup struct {
	Hooks []hookEntry `json:"hooks"`
}

// Install adds an entry running binPath for each of events to the settings at
// settingsPath, preserving everything else in the file. Events that already
// have our entry are left alone; entries pointing at a moved copy of the
// binary are updated in place. The previous file is backed up first; the
// backup path is returned, empty if there was nothing to back up.
func Install(settingsPath, binPath string, events []claude.Event) (string, error) {
	data, err := readSettings(settingsPath)
	if err != nil {
		return "", err
	}

	command := HookCommand(binPath)
	changed := false
	for _, event := range events {
		if !event.IsValid() {
			return "", fmt.Errorf("unknown hook event %q", event)
		}

		path := "hooks." + string(event)
		groups := gjson.GetBytes(data, path)
		if groups.Exists() && !groups.IsArray() {
			return "", fmt.Errorf("invalid %s hooks in settings", event)
		}
		current, stale := ownCommands(path, groups, command)
		for _, commandPath := range stale {
			if data, err = sjson.SetBytes(data, commandPath, command); err != nil {
				return "", fmt.Errorf("failed to update %s hook: %w", event, err)
			}
			changed = true
		}
		if current || len(stale) > 0 {
			continue
		}

		group := hookGroup{Hooks: []hookEntry{{Type: "command", Command: command, Timeout: HookTimeout}}}
		if data, err = sjson.SetBytes(data, path+".-1", group); err != nil {
			return "", fmt.Errorf("failed to add %s hook: %w", event, err)
		}
		changed = true
	}

	if !changed {
		return "", nil
	}

	backup, err := BackupSettings(settingsPath)
	if err != nil {
		return "", err
	}
	return backup, writeSettings(settingsPath, data)
}

// ownCommands reports whether groups already run command, and returns the
// settings paths of entries installed from another location of this binary.
func ownCommands(path string, groups gjson.Result, command string) (bool, []string) {
	current := false
	var stale []string
	groups.ForEach(func(gi, group gjson.Result) bool {
		group.Get("hooks").ForEach(func(hi, hook gjson.Result) bool {
			c := hook.Get("command").String()
			switch {
			case c == command:
				current = true
			case isOwnCommand(c, command):
				stale = append(stale, fmt.Sprintf("%s.%d.hooks.%d.command", path, gi.Int(), hi.Int()))
			}
			return true
		})
		return true
	})
	return current, stale
}
