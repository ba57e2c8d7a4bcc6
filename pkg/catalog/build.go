package catalog

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/jbdamask/botcmd/pkg/commands"
)

// Decomposition strategies understood by Build.
const (
	StrategyNone   = "none"
	StrategyRest   = "rest"
	StrategyFields = "fields"
)

// Build converts catalog entries into commands in file order.
func Build(file *File) ([]*commands.Command, error) {
	converter := md.NewConverter("", true, nil)

	cmds := make([]*commands.Command, 0, len(file.Commands))
	for i, entry := range file.Commands {
		cmd, err := buildEntry(entry, converter)
		if err != nil {
			if entry.Name == "" {
				return nil, fmt.Errorf("command #%d: %w", i+1, err)
			}
			return nil, fmt.Errorf("command %s: %w", entry.Name, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func buildEntry(entry Entry, converter *md.Converter) (*commands.Command, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.ContainsFunc(entry.Name, isSpace) {
		return nil, fmt.Errorf("name must be a single token")
	}

	cmd := &commands.Command{Name: entry.Name}

	if entry.Groups != nil {
		cmd.Groups = &commands.Groups{
			Allow: commands.NewGroupSet(entry.Groups.Allow...),
			Block: commands.NewGroupSet(entry.Groups.Block...),
		}
	}

	if entry.Metadata != nil {
		meta, err := buildMetadata(entry.Metadata, converter)
		if err != nil {
			return nil, err
		}
		cmd.Metadata = meta
	}

	decompose, err := strategy(entry.Decompose, cmd.Metadata)
	if err != nil {
		return nil, err
	}
	cmd.Decompose = decompose
	return cmd, nil
}

func buildMetadata(m *Metadata, converter *md.Converter) (*commands.Metadata, error) {
	meta := &commands.Metadata{
		Name:        m.Name,
		Description: m.Description,
		Examples:    m.Examples,
	}
	if meta.Description == "" && m.DescriptionHTML != "" {
		text, err := converter.ConvertString(m.DescriptionHTML)
		if err != nil {
			return nil, fmt.Errorf("html description: %w", err)
		}
		meta.Description = strings.TrimSpace(text)
	}
	for _, a := range m.Args {
		meta.Args = append(meta.Args, commands.Arg{
			Key:      a.Key,
			Name:     a.Name,
			Type:     a.Type,
			Required: a.Required,
		})
	}
	for _, f := range m.Flags {
		meta.Flags = append(meta.Flags, commands.Flag{
			Key:         f.Key,
			Name:        f.Name,
			Description: f.Description,
		})
	}
	return meta, nil
}
