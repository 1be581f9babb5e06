package commands

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/state"
)

// ResetCommand restores a scope of fields to their registry defaults.
type ResetCommand struct {
	BaseCommand
	ctx *Context
}

func NewResetCommand(ctx *Context) *ResetCommand {
	return &ResetCommand{
		BaseCommand: BaseCommand{
			Name:        "reset",
			Description: "Restore a group of fields to defaults",
			Usage:       "reset <defense|kite|melee|casting|distance|target|all>",
			Examples: []string{
				"reset melee",
				"reset all",
			},
		},
		ctx: ctx,
	}
}

func (c *ResetCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("reset: %w", ErrMissingParameter)
	}

	s := c.ctx.State
	reg := c.ctx.Resolver.Registry()
	scope := strings.ToLower(args[0])

	switch scope {
	case "defense":
		s.ResetDefense(reg)
		c.ctx.announce("Defense reset to defaults.")
	case "kite", "kiting":
		s.Kiting = false
		c.ctx.announce("Kiting is now off.")
	case "melee":
		s.ResetMelee(reg)
		c.ctx.announce("Melee modes reset to defaults.")
	case "casting":
		s.ResetCasting(reg)
		c.ctx.announce("Casting mode reset to default.")
	case "distance":
		s.MaxWeaponskillDistance = 0
		c.ctx.announce("Max weaponskill distance reset.")
	case "target":
		s.ResetTarget(reg)
		c.ctx.announce("Targeting reset to defaults.")
	case "all":
		s.ResetDefense(reg)
		s.Kiting = false
		s.ResetMelee(reg)
		s.ResetCasting(reg)
		s.MaxWeaponskillDistance = 0
		s.ResetTarget(reg)
		s.IdleMode = reg.First(state.FieldIdle)
		s.RestingMode = reg.First(state.FieldResting)
		s.ShowSet = state.ShowSetNone
		c.ctx.announce("All modes reset to defaults.")
	default:
		return fmt.Errorf("reset %q: %w", args[0], ErrUnknownField)
	}

	c.ctx.stateChanged("Reset", scope)
	c.ctx.RequestUpdate("auto")
	return nil
}
