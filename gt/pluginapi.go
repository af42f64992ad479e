// Package gt provides a tiny, editor-only stub for the
// interpreted plugin API exposed by the client at runtime via Yaegi.
//
// Script plugins in data/plugins do `import "gt"`. The real
// implementations are injected into the Yaegi interpreter by
// exportsForPlugin in the client; these no-op stubs are never called by
// the compiled client.
package gt

// ClientVersion mirrors the client version value exported to plugins.
var ClientVersion int

// Logf is a no-op printf-style logger for editor/linter happiness.
func Logf(format string, args ...interface{}) {}

// Console writes a message to the in-client console.
func Console(msg string) {}

// RunCommand runs a slash command such as "/orbs hp off".
func RunCommand(cmd string) bool { return false }

// RegisterCommand handles a local slash command like "/example".
func RegisterCommand(command string, handler func(args string)) {}

// ConfigBool reads a stored plugin option.
func ConfigBool(group, key string) bool { return false }

// SetConfigBool stores a plugin option. Plugins listening on the group
// are notified.
func SetConfigBool(group, key string, v bool) {}

// Plugins returns the names of the running compiled plugins.
func Plugins() []string { return nil }
