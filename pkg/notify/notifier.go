// Package notify bridges the interpreter's notification sink onto the
// command event bus so hosts can subscribe to chat output as events.
package notify

import (
	"github.com/mhanski/gearcmd/pkg/equipment"
	"github.com/mhanski/gearcmd/pkg/events"
)

// TopicChat is the event bus topic chat notifications are published on.
const TopicChat = "notification.chat"

// ChatMessage is the event payload published for each notification.
type ChatMessage struct {
	Priority equipment.Priority
	Text     string
}

// BusNotifier implements equipment.Notifier by emitting chat messages on
// the command event bus.
type BusNotifier struct {
	bus *events.CommandEventBus
}

// NewBusNotifier creates a notifier publishing to the given bus.
func NewBusNotifier(bus *events.CommandEventBus) *BusNotifier {
	return &BusNotifier{bus: bus}
}

// Notify publishes the message on the chat topic. Fire-and-forget.
func (n *BusNotifier) Notify(priority equipment.Priority, message string) {
	n.bus.Emit(TopicChat, ChatMessage{Priority: priority, Text: message})
}
