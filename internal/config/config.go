package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kamikazebr/claude-hookkit/internal/fsutil"
	"github.com/kamikazebr/claude-hookkit/pkg/env"
)

const (
	DirName = ".hookkit"
	EnvFile = ".env"

	KeyLogFile         = "HOOKKIT_LOG_FILE"
	KeyLogDisabled     = "HOOKKIT_LOG_DISABLED"
	KeyNotify          = "HOOKKIT_NOTIFY"
	KeyBlockedCommands = "HOOKKIT_BLOCKED_COMMANDS"
)

// GetConfigDir returns the config directory path for the current user
// When running with sudo, it returns the actual user's home directory (not /root)
func GetConfigDir() (string, error) {
	_, home, err := fsutil.ActualUser()
	if err != nil {
		return "", fmt.Errorf("failed to get user directory: %w", err)
	}

	return filepath.Join(home, DirName), nil
}

type Config struct {
	// LogFile is where the built-in hooks write their debug log.
	LogFile     string
	LogDisabled bool

	// Notify toggles desktop notifications for Stop and Notification.
	Notify bool

	// BlockedCommands are extra substrings that make the Bash guard deny a command.
	BlockedCommands []string
}

// DefaultConfig returns a config with default values rooted at dir
func DefaultConfig(dir string) *Config {
	return &Config{
		LogFile: filepath.Join(dir, "logs", "claude-hooks.log"),
		Notify:  true,
	}
}

// Load reads ~/.hookkit/.env. Variables from the process environment win over
// the file. A missing file yields the defaults.
func Load() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir, env.OS())
}

// LoadFrom loads dir/.env and then applies overrides from environ.
func LoadFrom(dir string, environ env.Environment) (*Config, error) {
	cfg := DefaultConfig(dir)

	path := filepath.Join(dir, EnvFile)
	values, err := env.FromDotenv(path)
	switch {
	case err == nil:
		if err := cfg.apply(values, dir); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if environ != nil {
		if err := cfg.apply(environ, dir); err != nil {
			return nil, fmt.Errorf("invalid environment: %w", err)
		}
	}
	return cfg, nil
}

func (c *Config) apply(e env.Environment, dir string) error {
	if v, ok := e.LookupEnv(KeyLogFile); ok && v != "" {
		c.LogFile = expandPath(v, dir)
	}
	if v, ok := e.LookupEnv(KeyLogDisabled); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyLogDisabled, err)
		}
		c.LogDisabled = b
	}
	if v, ok := e.LookupEnv(KeyNotify); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyNotify, err)
		}
		c.Notify = b
	}
	if v, ok := e.LookupEnv(KeyBlockedCommands); ok {
		c.BlockedCommands = splitList(v)
	}
	return nil
}

// expandPath resolves relative paths against the config directory.
func expandPath(p, dir string) string {
	if !filepath.IsAbs(p) {
		return filepath.Join(dir, p)
	}
	return p
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
