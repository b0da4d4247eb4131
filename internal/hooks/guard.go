package hooks

import (
	"regexp"
	"strings"
)

// Rule matches a command or prompt that the built-in hooks refuse.
type Rule struct {
	Pattern *regexp.Regexp
	Reason  string
}

var dangerousCommands = []Rule{
	{
		Pattern: regexp.MustCompile(`\brm\s+(-[a-zA-Z]+\s+)*-[a-zA-Z]*[rR][a-zA-Z]*\s+(-[a-zA-Z]+\s+)*(/|~|\$HOME)/?(\s|;|&|$)`),
		Reason:  "recursive delete of the root or home directory",
	},
	{Pattern: regexp.MustCompile(`\bmkfs(\.[a-z0-9]+)?\s`), Reason: "formats a filesystem"},
	{Pattern: regexp.MustCompile(`\bdd\s.*\bof=/dev/`), Reason: "writes to a raw device"},
	{Pattern: regexp.MustCompile(`>\s*/dev/(sd|nvme|hd)[a-z0-9]*`), Reason: "writes to a raw device"},
	{Pattern: regexp.MustCompile(`:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`), Reason: "fork bomb"},
	{Pattern: regexp.MustCompile(`\bchmod\s+-R\s+0?777\s+/(\s|$)`), Reason: "makes the root directory world-writable"},
	{Pattern: regexp.MustCompile(`\b(curl|wget)\s[^|]*\|\s*(sudo\s+)?(ba|z)?sh\b`), Reason: "pipes a download into a shell"},
}

var sudoCommand = regexp.MustCompile(`(^|[;&|(]\s*)sudo\s`)

var secretPatterns = []Rule{
	{Pattern: regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`), Reason: "AWS access key"},
	{Pattern: regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`), Reason: "private key"},
	{Pattern: regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`), Reason: "GitHub token"},
	{Pattern: regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{20,}`), Reason: "Anthropic API key"},
	{Pattern: regexp.MustCompile(`\bxox[abpr]-[A-Za-z0-9-]{10,}`), Reason: "Slack token"},
}

// Guard decides which shell commands the built-in hooks deny or escalate.
type Guard struct {
	rules   []Rule
	blocked []string
}

// NewGuard returns a guard with the default rules plus blocked, a list of
// literal substrings that are denied as well.
func NewGuard(blocked []string) *Guard {
	return &Guard{rules: dangerousCommands, blocked: blocked}
}

// Denied returns the reason command must not run.
func (g *Guard) Denied(command string) (string, bool) {
	normalized := strings.Join(strings.Fields(command), " ")
	if normalized == "" {
		return "", false
	}
	for _, r := range g.rules {
		if r.Pattern.MatchString(normalized) {
			return r.Reason, true
		}
	}
	for _, b := range g.blocked {
		if strings.Contains(normalized, b) {
			return "matches blocked command " + `"` + b + `"`, true
		}
	}
	return "", false
}

// NeedsConfirmation reports commands that should be confirmed by the user.
func (g *Guard) NeedsConfirmation(command string) bool {
	return sudoCommand.MatchString(strings.TrimSpace(command))
}

// findSecret returns the kind of secret found in text.
func findSecret(text string) (string, bool) {
	for _, r := range secretPatterns {
		if r.Pattern.MatchString(text) {
			return r.Reason, true
		}
	}
	return "", false
}
