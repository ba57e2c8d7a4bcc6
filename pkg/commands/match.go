package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decomposition is the result of splitting a message into a command and its
// arguments.
type Decomposition struct {
	// Command is the name of the matched command.
	Command string

	// Remainder is the message text after the command token and one
	// separator.
	Remainder string

	// Args holds the output of the command's DecomposeFunc. It is nil when
	// the command has none, or when it returned an empty map; Remainder is
	// the result in that case.
	Args map[string]any
}

// Structured reports whether the decomposition produced named arguments.
func (d *Decomposition) Structured() bool {
	return d.Args != nil
}

// Value returns Args when present and Remainder otherwise.
func (d *Decomposition) Value() any {
	if d.Structured() {
		return d.Args
	}
	return d.Remainder
}

// firstToken returns the text up to the first whitespace character.
func firstToken(message string) string {
	if i := strings.IndexFunc(message, unicode.IsSpace); i >= 0 {
		return message[:i]
	}
	return message
}

// IsCommandIn reports whether name is registered and is the first token of
// message. Matching is exact and case-sensitive.
func (r *Registry) IsCommandIn(name, message string) bool {
	return r.Has(name) && firstToken(message) == name
}

// FindCommandIn returns the registered command named by the first token of
// message.
func (r *Registry) FindCommandIn(message string) (*Command, bool) {
	return r.Get(firstToken(message))
}

// Decompose splits message into the invoked command and its arguments. When
// name is not empty the message must invoke that command. It returns false
// when no registered command applies.
//
// A DecomposeFunc returning nil or an empty map yields the bare remainder,
// which means a command cannot report "no arguments" as a structured result.
func (r *Registry) Decompose(message, name string) (*Decomposition, bool) {
	var (
		cmd *Command
		ok  bool
	)
	if name != "" {
		if !r.IsCommandIn(name, message) {
			return nil, false
		}
		cmd, ok = r.Get(name)
	} else {
		cmd, ok = r.FindCommandIn(message)
	}
	if !ok {
		return nil, false
	}

	d := &Decomposition{
		Command:   cmd.Name,
		Remainder: remainder(message, cmd.Name),
	}
	if cmd.Decompose != nil {
		if args := cmd.Decompose(d.Remainder); len(args) > 0 {
			d.Args = args
		}
	}
	return d, true
}

// remainder drops the command token and one separator from message.
func remainder(message, name string) string {
	rest := message[len(name):]
	if rest == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(rest)
	return rest[size:]
}
