package bot

import (
	"fmt"

	"github.com/jbdamask/botcmd/pkg/ui"
)

// UserInterface is the part of ui.UI the console loop needs.
type UserInterface interface {
	Print(string)
	Prompt(string) string
	PickCommand([]ui.CommandInfo) string
}

// Console runs an interactive session against a Bot on behalf of a user
// with fixed groups.
type Console struct {
	bot    *Bot
	ui     UserInterface
	groups []string
}

func NewConsole(b *Bot, u UserInterface, groups []string) *Console {
	return &Console{bot: b, ui: u, groups: groups}
}

// Run reads messages until the user types exit or quit.
func (c *Console) Run() error {
	c.ui.Print("Type a message to dispatch it, / to browse commands, 'exit' or 'quit' to stop.")
	if c.bot.session != nil {
		c.ui.Print(fmt.Sprintf("Session ID: %s", c.bot.session.SessionID))
	}

	for {
		input := c.ui.Prompt("> ")
		if input == "exit" || input == "quit" {
			break
		}
		if input == "" {
			continue
		}

		if input == "/" {
			name := c.ui.PickCommand(c.CommandInfos())
			if name == "" {
				continue
			}
			if text, ok := c.bot.reg.StringifyMetadata(name, c.bot.renderer); ok {
				c.ui.Print(text)
			} else {
				c.ui.Print(name)
			}
			continue
		}

		reply := c.bot.Handle(input, c.groups)
		c.ui.Print(reply.Text)
	}
	return nil
}

// CommandInfos lists the commands the console user may run, for the picker.
func (c *Console) CommandInfos() []ui.CommandInfo {
	var infos []ui.CommandInfo
	for _, cmd := range c.bot.reg.List() {
		if !c.bot.reg.IsAllowed(cmd.Name, c.groups) {
			continue
		}
		info := ui.CommandInfo{Name: cmd.Name}
		if cmd.Metadata != nil {
			info.Description = cmd.Metadata.Description
		}
		if help, ok := c.bot.reg.StringifyMetadata(cmd.Name, nil); ok {
			info.Help = help
		}
		infos = append(infos, info)
	}
	return infos
}
