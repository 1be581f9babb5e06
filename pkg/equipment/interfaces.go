package equipment

// Priority classifies chat notifications for the sink.
type Priority int

const (
	PriorityDefault Priority = iota
	PriorityAlert
	PriorityError
)

// Notifier is the chat/notification sink. Calls are fire-and-forget; the
// interpreter never consumes a result.
type Notifier interface {
	Notify(priority Priority, message string)
}

// Renderer recomputes and applies equipment for the current state. The
// trigger string describes what caused the refresh (a player status for
// update, "showset" for set inspection).
type Renderer interface {
	RenderEquipment(trigger string)
	SetSlotsEnabled(slots ...Slot)
	ApplyEquipmentSet(set Set)
}

// StatusProvider reads the player's current activity status from the game.
type StatusProvider interface {
	PlayerStatus() string
}

// NopRenderer is a Renderer that does nothing. Hosts without a game
// attachment use it so the interpreter can run standalone.
type NopRenderer struct{}

func (NopRenderer) RenderEquipment(trigger string) {}
func (NopRenderer) SetSlotsEnabled(slots ...Slot)  {}
func (NopRenderer) ApplyEquipmentSet(set Set)      {}

// StaticStatusProvider reports a fixed player status.
type StaticStatusProvider struct {
	Status string
}

func (p StaticStatusProvider) PlayerStatus() string {
	return p.Status
}
