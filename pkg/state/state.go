// Package state holds the per-session combat configuration: the mutable
// state record, the registry of ordered mode lists, and the resolver that
// maps field names onto state reads and writes.
package state

import "strings"

// Normal is the sentinel mode value: a mode field whose current value is
// not a member of its registered list is treated as Normal.
const Normal = "Normal"

// DefenseType selects which defense profile is active.
type DefenseType string

const (
	DefensePhysical DefenseType = "Physical"
	DefenseMagical  DefenseType = "Magical"
)

// ShowSetMode names the equipment pipeline stage to halt at for set
// inspection, or None.
type ShowSetMode string

const (
	ShowSetNone    ShowSetMode = "None"
	ShowSetPrecast ShowSetMode = "Precast"
	ShowSetMidcast ShowSetMode = "Midcast"
)

// Defense is the nested defense profile record.
type Defense struct {
	Active       bool
	Type         DefenseType
	PhysicalMode string
	MagicalMode  string
}

// State is the session state record. It is constructed by the host, owned
// by the command-handling path, and never shared across goroutines.
type State struct {
	Defense Defense

	Kiting           bool
	SelectNPCTargets bool

	OffenseMode     string
	DefenseMode     string
	CastingMode     string
	WeaponskillMode string
	IdleMode        string
	RestingMode     string
	PCTargetMode    string

	// MaxWeaponskillDistance of 0 means no limit.
	MaxWeaponskillDistance float64

	ShowSet ShowSetMode
}

// New returns a State initialized to the defaults defined by the registry:
// every mode field starts at the first entry of its list, booleans are
// false, distance is unlimited.
func New(reg *ModeRegistry) *State {
	s := &State{}
	s.ResetDefense(reg)
	s.ResetMelee(reg)
	s.ResetCasting(reg)
	s.ResetTarget(reg)
	s.IdleMode = reg.First(FieldIdle)
	s.RestingMode = reg.First(FieldResting)
	s.ShowSet = ShowSetNone
	return s
}

// ResetDefense restores the defense profile to its defaults.
func (s *State) ResetDefense(reg *ModeRegistry) {
	s.Defense = Defense{
		Active:       false,
		Type:         DefensePhysical,
		PhysicalMode: reg.First(FieldPhysicalDefense),
		MagicalMode:  reg.First(FieldMagicalDefense),
	}
}

// ResetMelee restores the melee combat modes to their defaults.
func (s *State) ResetMelee(reg *ModeRegistry) {
	s.OffenseMode = reg.First(FieldOffense)
	s.DefenseMode = reg.First(FieldDefense)
	s.WeaponskillMode = reg.First(FieldWeaponskill)
}

// ResetCasting restores the casting mode to its default.
func (s *State) ResetCasting(reg *ModeRegistry) {
	s.CastingMode = reg.First(FieldCasting)
}

// ResetTarget restores targeting to its defaults.
func (s *State) ResetTarget(reg *ModeRegistry) {
	s.SelectNPCTargets = false
	s.PCTargetMode = reg.First(FieldTarget)
}

// DefenseDescription names the active defense profile with its mode, e.g.
// "Physical defense (Default)".
func (s *State) DefenseDescription() string {
	if s.Defense.Type == DefenseMagical {
		return "Magical defense (" + s.Defense.MagicalMode + ")"
	}
	return "Physical defense (" + s.Defense.PhysicalMode + ")"
}

// Canonical normalizes a raw field name to registry form: lowercased, then
// first letter capitalized ("ws" stays the caller's problem; "PHYSICALDEFENSE"
// becomes "Physicaldefense").
func Canonical(name string) string {
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
