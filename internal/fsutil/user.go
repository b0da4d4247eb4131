// Package fsutil resolves the invoking user and keeps files created under sudo
// owned by that user.
package fsutil

import (
	"os"
	"os/user"
	"strconv"
)

// ActualUser returns the username and home directory of the real user. Under
// sudo it resolves SUDO_USER, so `sudo hookkit install-hooks` edits the
// caller's ~/.claude and not root's.
func ActualUser() (username, homeDir string, err error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if u, err := user.Lookup(sudoUser); err == nil {
			return u.Username, u.HomeDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	u, err := user.Current()
	if err != nil {
		return "", home, nil
	}
	return u.Username, home, nil
}

// FixOwnership chowns path to SUDO_USER. Outside sudo, or when the user
// cannot be resolved, it does nothing.
func FixOwnership(path string) error {
	sudoUser := os.Getenv("SUDO_USER")
	if sudoUser == "" {
		return nil
	}

	u, err := user.Lookup(sudoUser)
	if err != nil {
		return nil
	}

	uid, _ := strconv.Atoi(u.Uid)
	gid, _ := strconv.Atoi(u.Gid)
	return os.Chown(path, uid, gid)
}
