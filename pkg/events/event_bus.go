package events

import (
	"sync"
)

// CommandEventBus carries command-level traffic between the interpreter core
// and its host: chat notifications, command-executed events, equipment
// refresh requests. Handlers are invoked synchronously and in subscription
// order, matching the interpreter's one-command-at-a-time execution model.
type CommandEventBus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
	once    bool
}

// NewCommandEventBus creates a new command-level event bus
func NewCommandEventBus() *CommandEventBus {
	return &CommandEventBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for a specific event type.
// Returns an unsubscribe function.
func (bus *CommandEventBus) Subscribe(eventType string, handler func(interface{})) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// SubscribeOnce registers a handler that will only be called once
func (bus *CommandEventBus) SubscribeOnce(eventType string, handler func(interface{})) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    true,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// Emit sends an event to all subscribers of the given event type.
// Delivery is synchronous: Emit returns after every handler has run.
func (bus *CommandEventBus) Emit(eventType string, event interface{}) {
	bus.mu.RLock()
	subscribers := bus.subscribers[eventType]
	handlersCopy := make([]subscriberInfo, len(subscribers))
	copy(handlersCopy, subscribers)
	bus.mu.RUnlock()

	var onceHandlerIDs []int
	for _, sub := range handlersCopy {
		if sub.once {
			onceHandlerIDs = append(onceHandlerIDs, sub.id)
		}
	}

	if len(onceHandlerIDs) > 0 {
		bus.mu.Lock()
		for _, id := range onceHandlerIDs {
			bus.removeSubscriber(eventType, id)
		}
		bus.mu.Unlock()
	}

	for _, sub := range handlersCopy {
		sub.handler(event)
	}
}

// Clear removes all subscribers
func (bus *CommandEventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

func (bus *CommandEventBus) unsubscribe(eventType string, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.removeSubscriber(eventType, id)
}

// removeSubscriber removes a subscriber by ID (must be called with lock held)
func (bus *CommandEventBus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]

	for i, sub := range subscribers {
		if sub.id == id {
			bus.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			if len(bus.subscribers[eventType]) == 0 {
				delete(bus.subscribers, eventType)
			}
			break
		}
	}
}
