package hooks

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// BashTool is the tool name the host uses for shell commands.
const BashTool = "Bash"

// BashInput is the tool_input of the Bash tool. Other tools decode into it
// harmlessly, so the built-in hooks check the tool name before using it.
type BashInput struct {
	Command         string `json:"command"`
	Description     string `json:"description,omitempty"`
	RunInBackground bool   `json:"run_in_background,omitempty"`
}

// bashResult is the part of a Bash tool_response the hooks look at. Tool
// responses differ per tool, so they are kept raw and read with gjson.
type bashResult struct {
	Stderr      string
	Interrupted bool
}

func parseBashResult(raw *json.RawMessage) (bashResult, bool) {
	if raw == nil || !gjson.ValidBytes(*raw) {
		return bashResult{}, false
	}
	res := gjson.ParseBytes(*raw)
	if !res.IsObject() {
		return bashResult{}, false
	}
	return bashResult{
		Stderr:      strings.TrimSpace(res.Get("stderr").String()),
		Interrupted: res.Get("interrupted").Bool(),
	}, true
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
