package commands

import "testing"

func TestIsAllowed(t *testing.T) {
	r := newTestRegistry(t,
		rollDice(),
		&Command{Name: "!open"},
		&Command{Name: "!blockonly", Groups: &Groups{Block: NewGroupSet("muted")}},
		&Command{Name: "!both", Groups: &Groups{Allow: NewGroupSet("mod"), Block: NewGroupSet("mod")}},
	)

	tests := []struct {
		command string
		groups  []string
		want    bool
	}{
		{"!rolldice", []string{"admin"}, true},
		{"!rolldice", []string{"user"}, false},
		{"!rolldice", []string{"visitor"}, false},
		{"!rolldice", []string{"admin", "visitor"}, false},
		{"!rolldice", nil, false},
		{"!open", nil, true},
		{"!open", []string{"visitor"}, true},
		{"!blockonly", []string{"user"}, true},
		{"!blockonly", []string{"user", "muted"}, false},
		{"!both", []string{"mod"}, false},
		{"!unknown", []string{"admin"}, false},
	}
	for _, tt := range tests {
		if got := r.IsAllowed(tt.command, tt.groups); got != tt.want {
			t.Errorf("IsAllowed(%q, %v) = %v, want %v", tt.command, tt.groups, got, tt.want)
		}
	}
}

func TestGroupSetIntersects(t *testing.T) {
	a := NewGroupSet("a", "b", "c")
	if !a.Intersects(NewGroupSet("c")) {
		t.Error("Expected intersection on c")
	}
	if a.Intersects(NewGroupSet("d", "e", "f", "g")) {
		t.Error("Expected no intersection")
	}
	if a.Intersects(nil) {
		t.Error("nil set never intersects")
	}
}
