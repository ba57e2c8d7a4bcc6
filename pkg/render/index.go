package render

import (
	"strings"

	"github.com/jbdamask/botcmd/pkg/commands"
)

// Index renders one line per command that userGroups may run, in registry
// order. Commands without metadata are listed by name. A nil renderer defers
// to the registry's configured renderer.
func Index(reg *commands.Registry, userGroups []string, r commands.Renderer) string {
	var lines []string
	for _, cmd := range reg.List() {
		if !reg.IsAllowed(cmd.Name, userGroups) {
			continue
		}
		line, ok := reg.StringifyMetadata(cmd.Name, r)
		if !ok {
			line = "`" + cmd.Name + "`"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
