package client

import (
	"embed"
	"strings"
)

// embeddedPrompts holds the built-in system prompts so packaged executables
// can load them without needing access to the source tree.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// SystemPrompt returns the embedded system prompt for the given name
// ("analyze", "generate", "followup"). An unknown name yields "".
func SystemPrompt(name string) string {
	data, err := embeddedPrompts.ReadFile("prompts/" + name + "_system.txt")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
