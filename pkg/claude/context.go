package claude

import (
	"log/slog"

	"github.com/kamikazebr/claude-hookkit/pkg/env"
)

// ProjectDirEnv is the variable through which the host passes the project root.
const ProjectDirEnv = env.ProjectDirKey

// Context is handed to Hook.Invoke. Hooks must not print to stdout; the host
// parses it as the hook result. Use Logger instead.
type Context struct {
	// Logger writes to the sink chosen by Hook.Logging, or nowhere.
	Logger *slog.Logger

	env env.Environment
}

// ProjectDir returns the project root from CLAUDE_PROJECT_DIR. It reports
// false when the variable is unset or empty.
func (c *Context) ProjectDir() (string, bool) {
	return env.ProjectDir(c.env)
}
