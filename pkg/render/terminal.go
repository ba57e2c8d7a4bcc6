package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbdamask/botcmd/pkg/commands"
)

// Terminal renders the usage line and description with lipgloss styles for
// console output.
type Terminal struct {
	Usage       lipgloss.Style
	Description lipgloss.Style
}

// NewTerminal returns a Terminal renderer with the console color scheme.
func NewTerminal() *Terminal {
	return &Terminal{
		Usage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Render implements commands.Renderer.
func (t *Terminal) Render(md *commands.Metadata, commandName string) string {
	usage := t.Usage.Render(Usage(md, commandName))
	if md.Description == "" {
		return usage
	}
	return usage + "  " + t.Description.Render(md.Description)
}
