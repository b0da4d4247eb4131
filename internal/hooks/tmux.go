package hooks

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const tmuxTimeout = 2 * time.Second

// tmuxSessions returns the tmux sessions with a pane in cwd. It returns nil
// when tmux is not installed or not running.
func tmuxSessions(cwd string) []string {
	if cwd == "" {
		return nil
	}
	if _, err := exec.LookPath("tmux"); err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), tmuxTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "tmux", "list-panes", "-a", "-F", "#{session_name}\t#{pane_current_path}").Output()
	if err != nil {
		return nil
	}
	return sessionsIn(out, cwd)
}

// sessionsIn parses "session<TAB>path" lines and returns the sorted, unique
// sessions whose pane path is cwd.
func sessionsIn(listing []byte, cwd string) []string {
	cwd = filepath.Clean(cwd)

	var sessions []string
	scanner := bufio.NewScanner(bytes.NewReader(listing))
	for scanner.Scan() {
		name, path, ok := strings.Cut(scanner.Text(), "\t")
		if !ok || filepath.Clean(path) != cwd {
			continue
		}
		if !slices.Contains(sessions, name) {
			sessions = append(sessions, name)
		}
	}
	slices.Sort(sessions)
	return sessions
}
