package commands

import (
	"fmt"

	"github.com/mhanski/gearcmd/pkg/equipment"
	"github.com/mhanski/gearcmd/pkg/logging"
	"github.com/mhanski/gearcmd/pkg/state"
)

// Hooks are the optional override points a job-specific host installs at
// configuration time. Nil fields mean not installed; the core checks
// presence before invoking. Hooks run synchronously and must not re-invoke
// the dispatcher.
type Hooks struct {
	// PreDispatch sees every tokenized command line before verb routing.
	// Returning true marks the command handled and stops dispatch.
	PreDispatch func(tokens []string) bool
	// StateChanged is invoked after every state mutation with a description
	// of the changed field and its new value.
	StateChanged func(description string, value interface{})
	// PreUpdate runs before the default equipment re-synchronization.
	// Returning true suppresses the default action.
	PreUpdate func(tokens []string) bool
	// StateSummary replaces the default state display when it returns true.
	StateSummary func() bool
}

// Context carries the shared collaborators every handler needs. The host
// constructs one per session; handlers never reach for ambient state.
type Context struct {
	State    *state.State
	Resolver *state.Resolver
	Notifier equipment.Notifier
	Renderer equipment.Renderer
	Status   equipment.StatusProvider
	Hooks    Hooks
	Logger   logging.Logger
}

func (c *Context) announce(message string) {
	if c.Notifier != nil {
		c.Notifier.Notify(equipment.PriorityDefault, message)
	}
}

func (c *Context) announceError(message string) {
	if c.Notifier != nil {
		c.Notifier.Notify(equipment.PriorityError, message)
	}
}

func (c *Context) stateChanged(description string, value interface{}) {
	if c.Hooks.StateChanged != nil {
		c.Hooks.StateChanged(description, value)
	}
}

// runUpdate offers the pre-update hook, then performs the default
// equipment re-synchronization for the current player status.
func (c *Context) runUpdate(tokens []string) {
	if c.Hooks.PreUpdate != nil && c.Hooks.PreUpdate(tokens) {
		return
	}
	if c.Renderer == nil {
		return
	}
	status := ""
	if c.Status != nil {
		status = c.Status.PlayerStatus()
	}
	c.Renderer.RenderEquipment(status)
}

// RequestUpdate runs the update operation with a single trigger token.
// Handlers conclude with RequestUpdate("auto") after mutating state.
func (c *Context) RequestUpdate(trigger string) {
	c.runUpdate([]string{trigger})
}

// DisplayState composes and announces the current-state summary, unless
// the host's summary override handles it. Read-only.
func (c *Context) DisplayState() {
	if c.Hooks.StateSummary != nil && c.Hooks.StateSummary() {
		return
	}
	reg := c.Resolver.Registry()
	c.announce(FormatStateSummary(c.State, reg))
	if c.State.ShowSet != state.ShowSetNone {
		c.announce(fmt.Sprintf("Show set: %s", c.State.ShowSet))
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
