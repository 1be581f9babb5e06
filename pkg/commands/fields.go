package commands

import "github.com/mhanski/gearcmd/pkg/state"

// boolField reads and writes one boolean-valued state flag. The table
// drives toggle, activate, and the boolean branch of set, replacing
// per-field branch chains with a lookup.
type boolField struct {
	describe func(s *state.State) string
	get      func(s *state.State) bool
	set      func(s *state.State, v bool)
}

var boolFields = map[string]boolField{
	"defense": {
		describe: func(s *state.State) string { return s.DefenseDescription() },
		get:      func(s *state.State) bool { return s.Defense.Active },
		set:      func(s *state.State, v bool) { s.Defense.Active = v },
	},
	"kite": {
		describe: func(s *state.State) string { return "Kiting" },
		get:      func(s *state.State) bool { return s.Kiting },
		set:      func(s *state.State, v bool) { s.Kiting = v },
	},
	"target": {
		describe: func(s *state.State) string { return "NPC targeting" },
		get:      func(s *state.State) bool { return s.SelectNPCTargets },
		set:      func(s *state.State, v bool) { s.SelectNPCTargets = v },
	},
}

// lookupBoolField resolves a lowercased field token, honoring the
// kite/kiting alias.
func lookupBoolField(name string) (boolField, bool) {
	if name == "kiting" {
		name = "kite"
	}
	f, ok := boolFields[name]
	return f, ok
}
