package render

import (
	"strings"
	"testing"

	"github.com/jbdamask/botcmd/pkg/commands"
)

func diceMetadata() *commands.Metadata {
	return &commands.Metadata{
		Name:        "roll dice",
		Description: "Returns a random number between 1 and numOfSides.",
		Examples:    []string{"!rolldice 20"},
		Args: []commands.Arg{
			{Key: "numOfSides", Type: "number", Required: true},
			{Key: "times"},
		},
		Flags: []commands.Flag{{Key: "-help", Description: "Shows detailed usage."}},
	}
}

func TestUsage(t *testing.T) {
	if got := Usage(diceMetadata(), "!rolldice"); got != "!rolldice <numOfSides> [times]" {
		t.Errorf("Usage = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown.Render(diceMetadata(), "!rolldice")
	want := strings.Join([]string{
		"### Roll Dice",
		"",
		"`!rolldice <numOfSides> [times]`",
		"",
		"Returns a random number between 1 and numOfSides.",
		"",
		"**Arguments**",
		"",
		"- `numOfSides` (number), required",
		"- `times`",
		"",
		"**Flags**",
		"",
		"- `-help` Shows detailed usage.",
		"",
		"**Examples**",
		"",
		"- `!rolldice 20`",
	}, "\n")
	if got != want {
		t.Errorf("Markdown mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdownHeadingFallsBackToCommand(t *testing.T) {
	got := Markdown.Render(&commands.Metadata{}, "!ping")
	if got != "### !ping\n\n`!ping`" {
		t.Errorf("got %q", got)
	}
}

func TestHTML(t *testing.T) {
	got := HTML.Render(diceMetadata(), "!rolldice")
	for _, want := range []string{
		"<h3>Roll Dice</h3>",
		"<code>!rolldice &lt;numOfSides&gt; [times]</code>",
		"<strong>Arguments</strong>",
		"<li><code>!rolldice 20</code></li>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML output missing %q:\n%s", want, got)
		}
	}
}

func TestTerminal(t *testing.T) {
	got := NewTerminal().Render(diceMetadata(), "!rolldice")
	if !strings.Contains(got, "!rolldice <numOfSides> [times]") || !strings.Contains(got, "Returns a random number") {
		t.Errorf("Terminal output = %q", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "default", "Markdown", "html", "terminal"} {
		if r, err := ByName(name); err != nil || r == nil {
			t.Errorf("ByName(%q) = %v, %v", name, r, err)
		}
	}
	if _, err := ByName("fancy"); err == nil {
		t.Error("Expected error for unknown renderer")
	}
}

func TestIndexFiltersByGroups(t *testing.T) {
	reg, err := commands.New([]*commands.Command{
		{Name: "!ping"},
		{
			Name:     "!ban",
			Groups:   &commands.Groups{Allow: commands.NewGroupSet("admin")},
			Metadata: &commands.Metadata{Description: "Bans a user.", Args: []commands.Arg{{Key: "user"}}},
		},
		{
			Name:     "!rolldice",
			Metadata: &commands.Metadata{Description: "Rolls.", Args: []commands.Arg{{Key: "numOfSides"}}},
		},
	}, commands.Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := Index(reg, []string{"user"}, nil)
	want := "`!ping`\n`!rolldice <numOfSides>` | Rolls."
	if got != want {
		t.Errorf("Index(user) = %q, want %q", got, want)
	}

	got = Index(reg, []string{"admin"}, nil)
	if !strings.Contains(got, "`!ban <user>` | Bans a user.") {
		t.Errorf("Index(admin) missing !ban: %q", got)
	}
}
