package commands

import (
	"io"
	"log/slog"
	"slices"
)

// Options configures a Registry.
type Options struct {
	// Renderer is used by StringifyMetadata when no renderer is passed
	// explicitly. DefaultRenderer is used when nil.
	Renderer Renderer

	// Logger receives debug records for registry changes. Logging is
	// discarded when nil.
	Logger *slog.Logger
}

// Registry holds all registered commands keyed by name.
//
// A Registry is not safe for concurrent use; hosts that share one between
// goroutines must serialize access themselves.
type Registry struct {
	commands map[string]*Command
	order    []string // Preserve insertion order for display
	renderer Renderer
	logger   *slog.Logger
}

// New creates a registry holding cmds. It fails on the first command that
// cannot be registered.
func New(cmds []*Command, opts Options) (*Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		order:    make([]string, 0, len(cmds)),
		renderer: opts.Renderer,
		logger:   logger.With("component", "commands"),
	}
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a command to the registry. It never overwrites: registering
// a name twice returns a *DuplicateCommandError and leaves the registry
// untouched.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.Name == "" {
		return ErrInvalidCommand
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return &DuplicateCommandError{Name: cmd.Name}
	}

	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	r.logger.Debug("command registered", "command", cmd.Name)
	return nil
}

// Unregister removes a command. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	if _, exists := r.commands[name]; !exists {
		return
	}
	delete(r.commands, name)
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.logger.Debug("command unregistered", "command", name)
}

// Has reports whether a command with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all registered commands in registration order
func (r *Registry) List() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Names returns the names of all registered commands
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
