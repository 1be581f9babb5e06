package state

// Extension lets a job-specific host add mode fields the core does not
// know about. Both funcs are optional; nil means not installed.
type Extension struct {
	// ModeTable resolves a canonical field name to its ordered value list
	// and current value. ok=false declines the field.
	ModeTable func(field string) (values []string, current string, ok bool)
	// SetMode writes a value for a field the core cannot map to the state
	// record. A false return declines the write.
	SetMode func(field, value string) bool
}

// modeAccessor reads and writes one mode-valued field of the State record.
// The table replaces per-field branch logic with a single lookup.
type modeAccessor struct {
	get func(s *State) string
	set func(s *State, v string)
}

var modeAccessors = map[string]modeAccessor{
	FieldOffense: {
		get: func(s *State) string { return s.OffenseMode },
		set: func(s *State, v string) { s.OffenseMode = v },
	},
	FieldDefense: {
		get: func(s *State) string { return s.DefenseMode },
		set: func(s *State, v string) { s.DefenseMode = v },
	},
	FieldCasting: {
		get: func(s *State) string { return s.CastingMode },
		set: func(s *State, v string) { s.CastingMode = v },
	},
	FieldWeaponskill: {
		get: func(s *State) string { return s.WeaponskillMode },
		set: func(s *State, v string) { s.WeaponskillMode = v },
	},
	FieldIdle: {
		get: func(s *State) string { return s.IdleMode },
		set: func(s *State, v string) { s.IdleMode = v },
	},
	FieldResting: {
		get: func(s *State) string { return s.RestingMode },
		set: func(s *State, v string) { s.RestingMode = v },
	},
	FieldPhysicalDefense: {
		get: func(s *State) string { return s.Defense.PhysicalMode },
		set: func(s *State, v string) { s.Defense.PhysicalMode = v },
	},
	FieldMagicalDefense: {
		get: func(s *State) string { return s.Defense.MagicalMode },
		set: func(s *State, v string) { s.Defense.MagicalMode = v },
	},
	FieldTarget: {
		get: func(s *State) string { return s.PCTargetMode },
		set: func(s *State, v string) { s.PCTargetMode = v },
	},
}

// Resolver maps canonical field names onto the state record and the mode
// registry, falling back to the host extension for fields it does not own.
type Resolver struct {
	state    *State
	registry *ModeRegistry
	ext      Extension
}

// NewResolver builds a resolver over the given state and registry.
func NewResolver(s *State, reg *ModeRegistry) *Resolver {
	return &Resolver{state: s, registry: reg}
}

// SetExtension installs the host extension hooks.
func (r *Resolver) SetExtension(ext Extension) {
	r.ext = ext
}

// Registry exposes the mode registry backing this resolver.
func (r *Resolver) Registry() *ModeRegistry {
	return r.registry
}

// ModeTable resolves a canonical field name to its ordered value list and
// current value. Built-in fields resolve first; unknown fields are offered
// to the extension hook. ok=false means neither resolved the field.
func (r *Resolver) ModeTable(field string) (values []string, current string, ok bool) {
	if acc, builtin := modeAccessors[field]; builtin {
		if list, found := r.registry.List(field); found {
			return list, acc.get(r.state), true
		}
	}
	if r.ext.ModeTable != nil {
		if list, cur, handled := r.ext.ModeTable(field); handled {
			return list, cur, true
		}
	}
	return nil, "", false
}

// Apply writes a new value into the state field mapped from the canonical
// field name. Unknown fields are offered to the extension setter; a false
// return means nobody accepted the write.
func (r *Resolver) Apply(field, value string) bool {
	if acc, builtin := modeAccessors[field]; builtin {
		acc.set(r.state, value)
		return true
	}
	if r.ext.SetMode != nil {
		return r.ext.SetMode(field, value)
	}
	return false
}

// NextMode advances current to the next value in the ordered list, wrapping
// to the first entry after the last. A current value not in the list
// (including the Normal sentinel) is treated as position zero, so the first
// cycle lands on the list's first entry.
func NextMode(values []string, current string) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i + 1
			break
		}
	}
	idx++
	if idx > len(values) {
		idx = 1
	}
	if idx-1 < len(values) {
		return values[idx-1]
	}
	return Normal
}
