// Package render provides metadata renderers beyond commands.DefaultRenderer
// and builds help indexes from a registry.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jbdamask/botcmd/pkg/commands"
)

// Markdown renders a multi-line help block: heading, usage, description,
// arguments, flags and examples.
var Markdown commands.Renderer = commands.RendererFunc(renderMarkdown)

// Usage returns the usage line of a command. Required arguments are shown as
// <key> and optional ones as [key].
func Usage(md *commands.Metadata, commandName string) string {
	parts := []string{commandName}
	for _, arg := range md.Args {
		if arg.Key == "" {
			continue
		}
		if arg.Required {
			parts = append(parts, "<"+arg.Key+">")
		} else {
			parts = append(parts, "["+arg.Key+"]")
		}
	}
	return strings.Join(parts, " ")
}

func heading(md *commands.Metadata, commandName string) string {
	if md.Name != "" {
		return cases.Title(language.English).String(md.Name)
	}
	return commandName
}

func renderMarkdown(md *commands.Metadata, commandName string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "### %s\n\n", heading(md, commandName))
	fmt.Fprintf(&sb, "`%s`\n", Usage(md, commandName))
	if md.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", md.Description)
	}

	if len(md.Args) > 0 {
		sb.WriteString("\n**Arguments**\n\n")
		for _, arg := range md.Args {
			label := arg.Key
			if label == "" {
				label = arg.Name
			}
			line := "- `" + label + "`"
			if arg.Type != "" {
				line += " (" + arg.Type + ")"
			}
			if arg.Name != "" && arg.Name != label {
				line += " " + arg.Name
			}
			if arg.Required {
				line += ", required"
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(md.Flags) > 0 {
		sb.WriteString("\n**Flags**\n\n")
		for _, flag := range md.Flags {
			line := "- `" + flag.Key + "`"
			if flag.Description != "" {
				line += " " + flag.Description
			} else if flag.Name != "" {
				line += " " + flag.Name
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(md.Examples) > 0 {
		sb.WriteString("\n**Examples**\n\n")
		for _, ex := range md.Examples {
			sb.WriteString("- `" + ex + "`\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// ByName returns the renderer registered under name. "default" and the empty
// string select commands.DefaultRenderer.
func ByName(name string) (commands.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return commands.DefaultRenderer, nil
	case "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	case "terminal":
		return NewTerminal(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
