// Package equipment defines the collaborator interfaces the command
// interpreter depends on: the chat notification sink, the equipment
// renderer, and the player status source. Implementations live in the
// host; the interpreter only calls them.
package equipment

// Slot identifies an equipment slot on the player avatar.
type Slot string

const (
	SlotMain      Slot = "main"
	SlotSub       Slot = "sub"
	SlotRange     Slot = "range"
	SlotAmmo      Slot = "ammo"
	SlotHead      Slot = "head"
	SlotNeck      Slot = "neck"
	SlotLeftEar   Slot = "left_ear"
	SlotRightEar  Slot = "right_ear"
	SlotBody      Slot = "body"
	SlotHands     Slot = "hands"
	SlotLeftRing  Slot = "left_ring"
	SlotRightRing Slot = "right_ring"
	SlotBack      Slot = "back"
	SlotWaist     Slot = "waist"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
)

// AllSlots returns every equipment slot in canonical order.
func AllSlots() []Slot {
	return []Slot{
		SlotMain, SlotSub, SlotRange, SlotAmmo,
		SlotHead, SlotNeck, SlotLeftEar, SlotRightEar,
		SlotBody, SlotHands, SlotLeftRing, SlotRightRing,
		SlotBack, SlotWaist, SlotLegs, SlotFeet,
	}
}

// Set maps slots to item names. An empty set unequips everything it is
// applied to.
type Set map[Slot]string
