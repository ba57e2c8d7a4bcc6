package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jbdamask/botcmd/pkg/commands"
)

func loadRegistry(t *testing.T, path string) *commands.Registry {
	t.Helper()
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	cmds, err := Build(file)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	reg, err := commands.New(cmds, commands.Options{})
	if err != nil {
		t.Fatalf("commands.New failed: %v", err)
	}
	return reg
}

func TestLoadYAML(t *testing.T) {
	reg := loadRegistry(t, filepath.Join("testdata", "commands.yaml"))

	if reg.Len() != 3 {
		t.Fatalf("Expected 3 commands, got %d", reg.Len())
	}

	got, ok := reg.StringifyMetadata("!rolldice", nil)
	want := "`!rolldice <numOfSides>` | Returns a random number between 1 and numOfSides."
	if !ok || got != want {
		t.Errorf("StringifyMetadata = %q, want %q", got, want)
	}

	if !reg.IsAllowed("!rolldice", []string{"admin"}) || reg.IsAllowed("!rolldice", []string{"admin", "visitor"}) {
		t.Error("Groups were not loaded")
	}

	d, ok := reg.Decompose("!rolldice 20 -help", "")
	if !ok {
		t.Fatal("Expected !rolldice to match")
	}
	wantArgs := map[string]any{"numOfSides": "20", "-help": true}
	if !reflect.DeepEqual(d.Args, wantArgs) {
		t.Errorf("Args = %v, want %v", d.Args, wantArgs)
	}

	say, _ := reg.Get("!say")
	if say.Metadata.Description != "Repeats **your** message." {
		t.Errorf("html description converted to %q", say.Metadata.Description)
	}

	ping, _ := reg.Get("!ping")
	if ping.Decompose != nil || ping.Metadata != nil || ping.Groups != nil {
		t.Errorf("!ping should be a bare command, got %+v", ping)
	}
}

func TestLoadTOML(t *testing.T) {
	reg := loadRegistry(t, filepath.Join("testdata", "commands.toml"))

	d, ok := reg.Decompose("!kick bob spamming the chat", "")
	if !ok {
		t.Fatal("Expected !kick to match")
	}
	want := map[string]any{"user": "bob", "reason": "spamming the chat"}
	if !reflect.DeepEqual(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
	if reg.IsAllowed("!kick", []string{"user"}) {
		t.Error("!kick should be limited to mods")
	}
}

func TestLoadJSONC(t *testing.T) {
	reg := loadRegistry(t, filepath.Join("testdata", "commands.jsonc"))

	d, ok := reg.Decompose("!ban troll account", "")
	if !ok {
		t.Fatal("Expected !ban to match")
	}
	if d.Args["user"] != "troll account" {
		t.Errorf("Args = %v", d.Args)
	}

	d, _ = reg.Decompose("!ban", "")
	if d.Structured() || d.Remainder != "" {
		t.Errorf("Empty remainder should not be structured: %+v", d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	file, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(file.Commands) != 0 {
		t.Errorf("Expected empty catalog, got %d commands", len(file.Commands))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "commands.ini")); err == nil {
		t.Error("Expected unsupported extension error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("commands: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("Expected parse error naming the file, got %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"empty name", Entry{}, "command #1: name is required"},
		{"name with space", Entry{Name: "!roll dice"}, "single token"},
		{"unknown strategy", Entry{Name: "!x", Decompose: "regex"}, "unknown decompose strategy"},
		{"rest without args", Entry{Name: "!x", Decompose: "rest"}, "needs at least one argument key"},
		{"fields without keys", Entry{Name: "!x", Decompose: "fields", Metadata: &Metadata{}}, "needs argument or flag keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(&File{Commands: []Entry{tt.entry}})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestFieldsDecomposer(t *testing.T) {
	decompose := fieldsDecomposer([]string{"a", "b"}, []string{"-v"})

	tests := []struct {
		in   string
		want map[string]any
	}{
		{"", map[string]any{}},
		{"one", map[string]any{"a": "one"}},
		{"one two three", map[string]any{"a": "one", "b": "two three"}},
		{"-v one", map[string]any{"-v": true, "a": "one"}},
	}
	for _, tt := range tests {
		if got := decompose(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("decompose(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	user := &File{Commands: []Entry{
		{Name: "!a", Decompose: "none"},
		{Name: "!b"},
	}}
	project := &File{Commands: []Entry{
		{Name: "!a", Decompose: "rest"},
		{Name: "!c"},
	}}

	merged := Merge(user, nil, project)
	var names []string
	for _, e := range merged.Commands {
		names = append(names, e.Name)
	}
	if !reflect.DeepEqual(names, []string{"!a", "!b", "!c"}) {
		t.Errorf("Merged names = %v", names)
	}
	if merged.Commands[0].Decompose != "rest" {
		t.Error("Project entry should override user entry")
	}

	dup := Merge(&File{Commands: []Entry{{Name: "!x"}, {Name: "!x"}}})
	if len(dup.Commands) != 2 {
		t.Error("Duplicates inside one file must be kept for Build to reject")
	}
}
