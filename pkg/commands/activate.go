package commands

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/state"
)

// ActivateCommand forces a flag on without reading its prior value. The
// defense variants also select the defense type.
type ActivateCommand struct {
	BaseCommand
	ctx *Context
}

func NewActivateCommand(ctx *Context) *ActivateCommand {
	return &ActivateCommand{
		BaseCommand: BaseCommand{
			Name:        "activate",
			Description: "Force a combat flag on",
			Usage:       "activate <physicaldefense|magicaldefense|kite|target>",
			Examples: []string{
				"activate physicaldefense",
				"activate target",
			},
		},
		ctx: ctx,
	}
}

func (c *ActivateCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("activate: %w", ErrMissingParameter)
	}

	s := c.ctx.State
	var desc string

	switch strings.ToLower(args[0]) {
	case "physicaldefense":
		s.Defense.Type = state.DefensePhysical
		s.Defense.Active = true
		desc = s.DefenseDescription()
	case "magicaldefense":
		s.Defense.Type = state.DefenseMagical
		s.Defense.Active = true
		desc = s.DefenseDescription()
	case "kite", "kiting":
		s.Kiting = true
		desc = "Kiting"
	case "target":
		s.SelectNPCTargets = true
		desc = "NPC targeting"
	default:
		return fmt.Errorf("activate %q: %w", args[0], ErrUnknownField)
	}

	c.ctx.announce(fmt.Sprintf("%s is now on.", desc))
	c.ctx.stateChanged(desc, true)
	c.ctx.RequestUpdate("auto")
	return nil
}
