package commands

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/state"
)

// CycleCommand advances a mode field to the next value in its ordered
// list, wrapping to the first entry after the last.
type CycleCommand struct {
	BaseCommand
	ctx *Context
}

func NewCycleCommand(ctx *Context) *CycleCommand {
	return &CycleCommand{
		BaseCommand: BaseCommand{
			Name:        "cycle",
			Description: "Cycle a mode field through its value list",
			Usage:       "cycle <field>Mode",
			Examples: []string{
				"cycle offensemode",
				"cycle wsmode",
			},
		},
		ctx: ctx,
	}
}

// canonicalModeField maps a raw "<field>mode" token to its canonical
// registry name, honoring the ws alias. ok=false when the suffix check
// fails.
func canonicalModeField(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	if !strings.HasSuffix(lower, "mode") {
		return "", false
	}
	prefix := strings.TrimSuffix(lower, "mode")
	if prefix == "ws" {
		prefix = "weaponskill"
	}
	return state.Canonical(prefix), true
}

func (c *CycleCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("cycle: %w", ErrMissingParameter)
	}

	field, ok := canonicalModeField(args[0])
	if !ok {
		return fmt.Errorf("cycle %q: %w", args[0], ErrUnknownField)
	}

	values, current, ok := c.ctx.Resolver.ModeTable(field)
	if !ok {
		return fmt.Errorf("cycle %q: %w", args[0], ErrUnknownField)
	}

	next := state.NextMode(values, current)
	if !c.ctx.Resolver.Apply(field, next) {
		return fmt.Errorf("cycle %q: %w", args[0], ErrUnknownField)
	}

	c.ctx.announce(fmt.Sprintf("%s mode is now %s.", field, next))
	c.ctx.stateChanged(field, next)
	c.ctx.RequestUpdate("auto")
	return nil
}
