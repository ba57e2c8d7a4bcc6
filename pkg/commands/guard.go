package commands

// IsAllowed reports whether a user belonging to userGroups may run the named
// command. Blocked groups always win over allowed ones, and a command without
// an allow list is open to everyone not blocked. Unknown commands are never
// allowed.
func (r *Registry) IsAllowed(name string, userGroups []string) bool {
	cmd, ok := r.Get(name)
	if !ok {
		return false
	}
	if cmd.Groups == nil {
		return true
	}

	user := NewGroupSet(userGroups...)
	if cmd.Groups.Block.Intersects(user) {
		return false
	}
	if len(cmd.Groups.Allow) == 0 {
		return true
	}
	return cmd.Groups.Allow.Intersects(user)
}
