// Package env abstracts the process environment so hooks can be exercised with
// a fixed set of variables.
package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ProjectDirKey is set by Claude Code to the project root for every hook.
const ProjectDirKey = "CLAUDE_PROJECT_DIR"

// Environment looks up variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS returns the real process environment.
func OS() Environment {
	return osEnv{}
}

// Map is an in-memory environment.
type Map map[string]string

func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// FromDotenv reads KEY=VALUE files without touching the process environment.
// Later files override earlier ones.
func FromDotenv(paths ...string) (Map, error) {
	values, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return Map(values), nil
}

// ProjectDir returns the project root set by the host. An unset or empty
// variable reports false.
func ProjectDir(e Environment) (string, bool) {
	if e == nil {
		return "", false
	}
	dir, ok := e.LookupEnv(ProjectDirKey)
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}
