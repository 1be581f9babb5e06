package state

import (
	"fmt"
	"sort"
)

// Canonical names of the built-in mode fields.
const (
	FieldOffense         = "Offense"
	FieldDefense         = "Defense"
	FieldCasting         = "Casting"
	FieldWeaponskill     = "Weaponskill"
	FieldIdle            = "Idle"
	FieldResting         = "Resting"
	FieldPhysicalDefense = "Physicaldefense"
	FieldMagicalDefense  = "Magicaldefense"
	FieldTarget          = "Target"
)

// ModeRegistry maps a canonical field name to its ordered list of valid
// values. List order defines the cycle sequence and the first entry is the
// field's default. Lists are owned by configuration; command handlers only
// read them.
type ModeRegistry struct {
	lists map[string][]string
}

// NewModeRegistry returns a registry seeded with the built-in fields, each
// with a minimal single-entry list. Hosts extend the lists via SetList.
func NewModeRegistry() *ModeRegistry {
	return &ModeRegistry{
		lists: map[string][]string{
			FieldOffense:         {Normal},
			FieldDefense:         {Normal},
			FieldCasting:         {Normal},
			FieldWeaponskill:     {Normal},
			FieldIdle:            {Normal},
			FieldResting:         {Normal},
			FieldPhysicalDefense: {"Default"},
			FieldMagicalDefense:  {"Default"},
			FieldTarget:          {Normal},
		},
	}
}

// SetList replaces the ordered value list for a field. The field name is
// canonicalized. Empty lists and duplicate values are rejected.
func (r *ModeRegistry) SetList(field string, values []string) error {
	field = Canonical(field)
	if field == "" {
		return fmt.Errorf("mode registry: empty field name")
	}
	if len(values) == 0 {
		return fmt.Errorf("mode registry: empty value list for %s", field)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return fmt.Errorf("mode registry: duplicate value %q for %s", v, field)
		}
		seen[v] = true
	}
	r.lists[field] = append([]string(nil), values...)
	return nil
}

// List returns the ordered value list for a canonical field name.
func (r *ModeRegistry) List(field string) ([]string, bool) {
	values, ok := r.lists[field]
	if !ok {
		return nil, false
	}
	return append([]string(nil), values...), true
}

// First returns the default (first) value for a field, or the Normal
// sentinel when the field is unknown.
func (r *ModeRegistry) First(field string) string {
	if values, ok := r.lists[field]; ok && len(values) > 0 {
		return values[0]
	}
	return Normal
}

// Fields returns the registered field names in sorted order.
func (r *ModeRegistry) Fields() []string {
	fields := make([]string, 0, len(r.lists))
	for field := range r.lists {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
