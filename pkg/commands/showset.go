package commands

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/state"
)

// ShowSetCommand inspects equipment sets: bare/tp renders the current
// melee set, precast/midcast halt equipment application at that stage for
// inspection, off clears the override. Unlike the mutating verbs it never
// triggers an equipment update.
type ShowSetCommand struct {
	BaseCommand
	ctx *Context
}

func NewShowSetCommand(ctx *Context) *ShowSetCommand {
	return &ShowSetCommand{
		BaseCommand: BaseCommand{
			Name:        "showset",
			Description: "Inspect equipment sets by pipeline stage",
			Usage:       "showset [tp|precast|midcast|off]",
			Examples: []string{
				"showset",
				"showset precast",
			},
		},
		ctx: ctx,
	}
}

func (c *ShowSetCommand) Execute(args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = strings.ToLower(args[0])
	}

	s := c.ctx.State
	switch arg {
	case "", "tp":
		if c.ctx.Renderer != nil {
			c.ctx.Renderer.RenderEquipment("showset")
		}
		c.ctx.announce(fmt.Sprintf("Showing TP set: %s/%s", s.OffenseMode, s.DefenseMode))
	case "precast":
		s.ShowSet = state.ShowSetPrecast
		c.ctx.announce("Show set: Precast.")
	case "midcast":
		s.ShowSet = state.ShowSetMidcast
		c.ctx.announce("Show set: Midcast.")
	case "off":
		s.ShowSet = state.ShowSetNone
		c.ctx.announce("Show set display is now off.")
	default:
		return fmt.Errorf("showset %q: %w", args[0], ErrUnknownField)
	}
	return nil
}
