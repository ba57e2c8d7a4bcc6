package commands

import "strings"

// Renderer turns command metadata into a string shown to users.
type Renderer interface {
	Render(md *Metadata, commandName string) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(md *Metadata, commandName string) string

// Render calls f(md, commandName).
func (f RendererFunc) Render(md *Metadata, commandName string) string {
	return f(md, commandName)
}

// DefaultRenderer renders a single markdown line: the usage in backticks,
// followed by the description.
//
//	`!rolldice <numOfSides>` | Returns a random number between 1 and numOfSides.
var DefaultRenderer Renderer = RendererFunc(renderUsageLine)

func renderUsageLine(md *Metadata, commandName string) string {
	var keys []string
	for _, arg := range md.Args {
		if arg.Key != "" {
			keys = append(keys, "<"+arg.Key+">")
		}
	}

	line := "`" + commandName + " " + strings.Join(keys, " ") + "`"
	if len(keys) == 0 {
		line = "`" + commandName + "`"
	}
	if md.Description != "" {
		line += " | " + md.Description
	}
	return line
}

// StringifyMetadata renders the metadata of the named command. The renderer
// passed in takes precedence over the one configured on the registry, which
// takes precedence over DefaultRenderer. It returns false when the command is
// unknown or has no metadata.
func (r *Registry) StringifyMetadata(name string, renderer Renderer) (string, bool) {
	cmd, ok := r.Get(name)
	if !ok || cmd.Metadata == nil {
		return "", false
	}

	switch {
	case renderer != nil:
	case r.renderer != nil:
		renderer = r.renderer
	default:
		renderer = DefaultRenderer
	}
	return renderer.Render(cmd.Metadata, name), true
}
