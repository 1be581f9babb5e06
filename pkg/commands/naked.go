package commands

import "github.com/mhanski/gearcmd/pkg/equipment"

// NakedCommand unlocks every equipment slot and applies an empty set.
// A convenience composite over two renderer operations; no state change.
type NakedCommand struct {
	BaseCommand
	ctx *Context
}

func NewNakedCommand(ctx *Context) *NakedCommand {
	return &NakedCommand{
		BaseCommand: BaseCommand{
			Name:        "naked",
			Description: "Unlock all slots and remove all equipment",
			Usage:       "naked",
		},
		ctx: ctx,
	}
}

func (c *NakedCommand) Execute(args []string) error {
	if c.ctx.Renderer == nil {
		return nil
	}
	c.ctx.Renderer.SetSlotsEnabled(equipment.AllSlots()...)
	c.ctx.Renderer.ApplyEquipmentSet(equipment.Set{})
	return nil
}
