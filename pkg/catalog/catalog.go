// Package catalog loads declarative command definitions from YAML, TOML or
// JSONC files and turns them into commands.Command values.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog.
type File struct {
	Commands []Entry `json:"commands" yaml:"commands" toml:"commands"`
}

// Entry describes one command in a catalog.
type Entry struct {
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Decompose string    `json:"decompose,omitempty" yaml:"decompose,omitempty" toml:"decompose,omitempty"`
	Groups    *Groups   `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
	Metadata  *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty" toml:"metadata,omitempty"`
}

// Groups mirrors commands.Groups with plain lists.
type Groups struct {
	Allow []string `json:"allow,omitempty" yaml:"allow,omitempty" toml:"allow,omitempty"`
	Block []string `json:"block,omitempty" yaml:"block,omitempty" toml:"block,omitempty"`
}

// Metadata mirrors commands.Metadata. DescriptionHTML is converted to
// markdown when Description is empty.
type Metadata struct {
	Name            string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	DescriptionHTML string   `json:"description_html,omitempty" yaml:"description_html,omitempty" toml:"description_html,omitempty"`
	Examples        []string `json:"examples,omitempty" yaml:"examples,omitempty" toml:"examples,omitempty"`
	Args            []Arg    `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Flags           []Flag   `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
}

type Arg struct {
	Key      string `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty" toml:"required,omitempty"`
}

type Flag struct {
	Key         string `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Format identifies a catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// Parse decodes catalog data in the given format. JSON input may contain
// comments and trailing commas.
func Parse(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse yaml catalog: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse toml catalog: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse json catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	return &file, nil
}

// Load reads a catalog file. A missing file yields an empty catalog.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	file, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}
