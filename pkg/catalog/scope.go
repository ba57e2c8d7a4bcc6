package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scope represents where a catalog is stored
type Scope string

const (
	ScopeUser    Scope = "user"    // ~/.config/botcmd/commands.yaml
	ScopeProject Scope = "project" // .botcmd.yaml in the working directory
)

// GetPath returns the path to the catalog file for the given scope
func GetPath(scope Scope) (string, error) {
	switch scope {
	case ScopeUser:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config", "botcmd", "commands.yaml"), nil
	case ScopeProject:
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return filepath.Join(cwd, ".botcmd.yaml"), nil
	default:
		return "", fmt.Errorf("unknown scope: %s", scope)
	}
}

// LoadAll loads the user and project catalogs and merges them by command
// name. Project entries replace user entries with the same name; the merged
// order is user entries first, then new project entries.
func LoadAll() (*File, error) {
	var files []*File
	for _, scope := range []Scope{ScopeUser, ScopeProject} {
		path, err := GetPath(scope)
		if err != nil {
			continue
		}
		file, err := Load(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return Merge(files...), nil
}

// Merge combines catalogs; later files take precedence by command name.
// Duplicates inside a single file are kept so that Build reports them.
func Merge(files ...*File) *File {
	merged := &File{}
	index := make(map[string]int)
	for _, file := range files {
		if file == nil {
			continue
		}
		added := make(map[string]int)
		for _, entry := range file.Commands {
			if i, ok := index[entry.Name]; ok {
				merged.Commands[i] = entry
				continue
			}
			added[entry.Name] = len(merged.Commands)
			merged.Commands = append(merged.Commands, entry)
		}
		for name, i := range added {
			index[name] = i
		}
	}
	return merged
}
