// Package bot dispatches chat messages against a command registry: it
// matches the command, checks the caller's groups, decomposes the arguments
// and answers the built-in help command.
package bot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jbdamask/botcmd/pkg/commands"
	"github.com/jbdamask/botcmd/pkg/history"
	"github.com/jbdamask/botcmd/pkg/logging"
	"github.com/jbdamask/botcmd/pkg/render"
)

// Options configures a Bot.
type Options struct {
	// Renderer is passed to StringifyMetadata for help output. The
	// registry's renderer is used when nil.
	Renderer commands.Renderer

	// HelpCommand is answered by the bot unless a registered command has
	// the same name. Empty disables it.
	HelpCommand string

	// Session records messages and dispatches when set.
	Session *history.SessionManager

	Logger *slog.Logger
}

// Reply is the outcome of handling one message.
type Reply struct {
	// Matched is true when the message invoked a registered command or
	// the help command.
	Matched bool

	// Denied is true when the caller's groups may not run the command.
	Denied bool

	// Help is true when the reply answers the help command.
	Help bool

	Command       string
	Decomposition *commands.Decomposition

	// Text is a human-readable answer.
	Text string
}

type Bot struct {
	reg      *commands.Registry
	renderer commands.Renderer
	help     string
	session  *history.SessionManager
	logger   *slog.Logger
}

func New(reg *commands.Registry, opts Options) *Bot {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Bot{
		reg:      reg,
		renderer: opts.Renderer,
		help:     opts.HelpCommand,
		session:  opts.Session,
		logger:   logger.With("component", "bot"),
	}
}

// Registry returns the registry the bot dispatches against.
func (b *Bot) Registry() *commands.Registry {
	return b.reg
}

// Handle processes one message sent by a user belonging to groups.
func (b *Bot) Handle(message string, groups []string) Reply {
	if b.session != nil {
		if err := b.session.AppendMessage(message); err != nil {
			b.logger.Warn("failed to record message", "error", err)
		}
	}

	if reply, ok := b.handleHelp(message, groups); ok {
		return reply
	}

	d, ok := b.reg.Decompose(message, "")
	if !ok {
		return Reply{Text: "No command found in message."}
	}

	allowed := b.reg.IsAllowed(d.Command, groups)
	b.record(history.Dispatch{
		Command:   d.Command,
		Groups:    groups,
		Allowed:   allowed,
		Remainder: d.Remainder,
		Args:      d.Args,
	})

	if !allowed {
		b.logger.Info("command denied", "command", d.Command, "groups", groups)
		return Reply{
			Matched: true,
			Denied:  true,
			Command: d.Command,
			Text:    fmt.Sprintf("You are not allowed to use %s.", d.Command),
		}
	}

	b.logger.Debug("command matched", "command", d.Command, "structured", d.Structured())
	return Reply{
		Matched:       true,
		Command:       d.Command,
		Decomposition: d,
		Text:          FormatDecomposition(d),
	}
}

func (b *Bot) handleHelp(message string, groups []string) (Reply, bool) {
	if b.help == "" || b.reg.Has(b.help) {
		return Reply{}, false
	}
	rest, found := strings.CutPrefix(message, b.help)
	if !found {
		return Reply{}, false
	}
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
		return Reply{}, false
	}

	reply := Reply{Matched: true, Help: true, Command: b.help}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		reply.Text = render.Index(b.reg, groups, b.renderer)
		if reply.Text == "" {
			reply.Text = "No commands available."
		}
		return reply, true
	}

	name := fields[0]
	if !b.reg.IsAllowed(name, groups) {
		reply.Text = fmt.Sprintf("Unknown command %s.", name)
		return reply, true
	}
	text, ok := b.reg.StringifyMetadata(name, b.renderer)
	if !ok {
		text = "`" + name + "`"
	}
	reply.Text = text
	return reply, true
}

func (b *Bot) record(d history.Dispatch) {
	if b.session == nil {
		return
	}
	if err := b.session.AppendDispatch(d); err != nil {
		b.logger.Warn("failed to record dispatch", "error", err)
	}
}

// FormatDecomposition renders the result of a decomposition for display.
// Structured arguments are shown as JSON with sorted keys.
func FormatDecomposition(d *commands.Decomposition) string {
	if !d.Structured() {
		if d.Remainder == "" {
			return d.Command
		}
		return fmt.Sprintf("%s %q", d.Command, d.Remainder)
	}
	data, err := json.Marshal(d.Args)
	if err != nil {
		return fmt.Sprintf("%s %v", d.Command, d.Args)
	}
	return fmt.Sprintf("%s %s", d.Command, data)
}
