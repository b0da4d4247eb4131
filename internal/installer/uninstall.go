package installer

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Uninstall removes the entries installed for binPath from every event,
// dropping groups and events left empty. Foreign entries are kept.
func Uninstall(settingsPath, binPath string) (string, error) {
	data, err := readSettings(settingsPath)
	if err != nil {
		return "", err
	}

	command := HookCommand(binPath)
	changed := false
	for event, groups := range gjson.GetBytes(data, "hooks").Map() {
		if !groups.IsArray() {
			continue
		}

		kept, removed, err := withoutCommand(groups, command)
		if err != nil {
			return "", fmt.Errorf("failed to filter %s hooks: %w", event, err)
		}
		if !removed {
			continue
		}
		changed = true

		path := "hooks." + event
		if len(kept) == 0 {
			data, err = sjson.DeleteBytes(data, path)
		} else {
			data, err = sjson.SetRawBytes(data, path, []byte("["+strings.Join(kept, ",")+"]"))
		}
		if err != nil {
			return "", fmt.Errorf("failed to update %s hooks: %w", event, err)
		}
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

// withoutCommand returns the raw groups with our entries removed. Groups with
// no entries left are dropped.
func withoutCommand(groups gjson.Result, command string) (kept []string, removed bool, err error) {
	for _, group := range groups.Array() {
		var hooks []string
		for _, hook := range group.Get("hooks").Array() {
			if isOwnCommand(hook.Get("command").String(), command) {
				removed = true
				continue
			}
			hooks = append(hooks, hook.Raw)
		}

		switch {
		case len(hooks) == len(group.Get("hooks").Array()):
			kept = append(kept, group.Raw)
		case len(hooks) > 0:
			raw, err := sjson.SetRaw(group.Raw, "hooks", "["+strings.Join(hooks, ",")+"]")
			if err != nil {
				return nil, false, err
			}
			kept = append(kept, raw)
		}
	}
	return kept, removed, nil
}
