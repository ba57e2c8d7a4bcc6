package commands

// DecomposeFunc turns the text that follows a command token into named
// arguments.
type DecomposeFunc func(remainder string) map[string]any

// Command describes a bot command. Definitions are owned by the host and are
// never modified by the registry.
type Command struct {
	// Name is the literal first token a message must carry, prefix included
	// (e.g. "!help" or "!rolldice").
	Name string

	// Decompose optionally splits the message remainder into arguments.
	Decompose DecomposeFunc

	// Groups restricts who may run the command.
	Groups *Groups

	// Metadata is descriptive only and never affects matching.
	Metadata *Metadata
}

// Groups holds the allow and block lists of a command. A user must belong to
// at least one allowed group (when any are listed) and to none of the blocked
// groups.
type Groups struct {
	Allow GroupSet
	Block GroupSet
}

// GroupSet is a set of group labels.
type GroupSet map[string]struct{}

// NewGroupSet builds a set from a list of labels.
func NewGroupSet(groups ...string) GroupSet {
	set := make(GroupSet, len(groups))
	for _, g := range groups {
		set[g] = struct{}{}
	}
	return set
}

// Has reports whether g is in the set.
func (s GroupSet) Has(g string) bool {
	_, ok := s[g]
	return ok
}

// Intersects reports whether any member of other is in the set.
func (s GroupSet) Intersects(other GroupSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for g := range small {
		if large.Has(g) {
			return true
		}
	}
	return false
}

// Metadata is the help information attached to a command.
type Metadata struct {
	Name        string
	Description string
	Examples    []string
	Args        []Arg
	Flags       []Flag
}

// Arg describes one argument of a command.
type Arg struct {
	Key      string
	Name     string
	Type     string
	Required bool
}

// Flag describes an optional switch such as "-help".
type Flag struct {
	Key         string
	Name        string
	Description string
}
