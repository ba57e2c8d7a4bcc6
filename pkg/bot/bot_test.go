package bot

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/jbdamask/botcmd/pkg/commands"
	"github.com/jbdamask/botcmd/pkg/history"
)

func newTestBot(t *testing.T, opts Options) *Bot {
	t.Helper()
	reg, err := commands.New([]*commands.Command{
		{
			Name: "!rolldice",
			Decompose: func(remainder string) map[string]any {
				n, _ := strconv.Atoi(remainder)
				return map[string]any{"numOfSides": n}
			},
			Groups: &commands.Groups{
				Allow: commands.NewGroupSet("admin"),
				Block: commands.NewGroupSet("visitor"),
			},
			Metadata: &commands.Metadata{
				Description: "Returns a random number between 1 and numOfSides.",
				Args:        []commands.Arg{{Key: "numOfSides"}},
			},
		},
		{Name: "!say"},
	}, commands.Options{})
	if err != nil {
		t.Fatalf("commands.New failed: %v", err)
	}
	if opts.HelpCommand == "" {
		opts.HelpCommand = "!help"
	}
	return New(reg, opts)
}

func TestHandleMatched(t *testing.T) {
	b := newTestBot(t, Options{})

	reply := b.Handle("!rolldice 20", []string{"admin"})
	if !reply.Matched || reply.Denied || reply.Command != "!rolldice" {
		t.Fatalf("Unexpected reply: %+v", reply)
	}
	if !reflect.DeepEqual(reply.Decomposition.Args, map[string]any{"numOfSides": 20}) {
		t.Errorf("Args = %v", reply.Decomposition.Args)
	}
	if reply.Text != `!rolldice {"numOfSides":20}` {
		t.Errorf("Text = %q", reply.Text)
	}

	reply = b.Handle("!say hello world", nil)
	if reply.Text != `!say "hello world"` {
		t.Errorf("Text = %q", reply.Text)
	}
}

func TestHandleDenied(t *testing.T) {
	b := newTestBot(t, Options{})

	reply := b.Handle("!rolldice 20", []string{"admin", "visitor"})
	if !reply.Matched || !reply.Denied {
		t.Fatalf("Expected denied reply, got %+v", reply)
	}
	if reply.Decomposition != nil {
		t.Error("Denied replies must not carry arguments")
	}
}

func TestHandleUnmatched(t *testing.T) {
	b := newTestBot(t, Options{})

	reply := b.Handle("random message body", nil)
	if reply.Matched {
		t.Errorf("Expected no match, got %+v", reply)
	}
	if reply := b.Handle("!helpme", nil); reply.Matched {
		t.Errorf("!helpme should not trigger help: %+v", reply)
	}
}

func TestHandleHelp(t *testing.T) {
	b := newTestBot(t, Options{})

	reply := b.Handle("!help", []string{"user"})
	if !reply.Help || reply.Text != "`!say`" {
		t.Errorf("Help index for user = %+v", reply)
	}

	reply = b.Handle("!help", []string{"admin"})
	if !strings.Contains(reply.Text, "`!rolldice <numOfSides>` | Returns a random number") {
		t.Errorf("Help index for admin = %q", reply.Text)
	}

	reply = b.Handle("!help !rolldice", []string{"admin"})
	want := "`!rolldice <numOfSides>` | Returns a random number between 1 and numOfSides."
	if reply.Text != want {
		t.Errorf("Help for !rolldice = %q", reply.Text)
	}

	reply = b.Handle("!help !rolldice", []string{"visitor"})
	if reply.Text != "Unknown command !rolldice." {
		t.Errorf("Hidden command help = %q", reply.Text)
	}
}

func TestHelpShadowedByRegisteredCommand(t *testing.T) {
	b := newTestBot(t, Options{})
	if err := b.Registry().Register(&commands.Command{Name: "!help"}); err != nil {
		t.Fatal(err)
	}

	reply := b.Handle("!help me", nil)
	if reply.Help || reply.Command != "!help" {
		t.Errorf("Registered !help should win: %+v", reply)
	}
}

func TestHandleRecordsHistory(t *testing.T) {
	sm, err := history.NewSessionManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	b := newTestBot(t, Options{Session: sm})

	b.Handle("!rolldice 6", []string{"admin"})
	b.Handle("hello", nil)

	events, err := history.ReadEvents(sm.FilePath)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	want := []string{history.EventTypeMessage, history.EventTypeDispatch, history.EventTypeMessage}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("Event types = %v, want %v", types, want)
	}
	if d := events[1].Dispatch; d.Command != "!rolldice" || !d.Allowed || d.Remainder != "6" {
		t.Errorf("Unexpected dispatch: %+v", d)
	}
}
