package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kamikazebr/claude-hookkit/internal/fsutil"
)

// ErrNoBackup is returned by RestoreLatest when no backup exists.
var ErrNoBackup = errors.New("no settings backup found")

// maxBackupsPerTick bounds the collision suffixes tried for one timestamp.
const maxBackupsPerTick = 1000

// BackupSettings copies settingsPath next to itself with a timestamp suffix.
// Backups taken within the same millisecond get a _NNN suffix, so names sort
// in creation order and none is overwritten. It returns an empty path when
// there is no file to back up.
func BackupSettings(settingsPath string) (string, error) {
	data, err := os.ReadFile(settingsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	base := fmt.Sprintf("%s.backup_%s", settingsPath, timestamp)

	for i := 0; i < maxBackupsPerTick; i++ {
		backupPath := base
		if i > 0 {
			backupPath = fmt.Sprintf("%s_%03d", base, i)
		}
		err := fsutil.CreateFile(backupPath, data, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
		return backupPath, nil
	}
	return "", fmt.Errorf("failed to write backup: too many backups at %s", timestamp)
}

// ListBackups lists all available backups, oldest first.
func ListBackups(settingsPath string) ([]string, error) {
	backups, err := filepath.Glob(settingsPath + ".backup_*")
	if err != nil {
		return nil, err
	}

	sort.Strings(backups)
	return backups, nil
}

// RestoreFromBackup restores configuration from a backup
func RestoreFromBackup(backupPath, settingsPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	return fsutil.WriteFile(settingsPath, data, 0o644)
}

// RestoreLatest restores the newest backup and returns its path.
func RestoreLatest(settingsPath string) (string, error) {
	backups, err := ListBackups(settingsPath)
	if err != nil {
		return "", err
	}
	if len(backups) == 0 {
		return "", ErrNoBackup
	}

	latest := backups[len(backups)-1]
	return latest, RestoreFromBackup(latest, settingsPath)
}
