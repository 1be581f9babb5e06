package commands

import "strings"

// UpdateCommand re-synchronizes equipment with the current state. It never
// fails and is idempotent: repeated calls without a state change produce
// the same equipment.
type UpdateCommand struct {
	BaseCommand
	ctx *Context
}

func NewUpdateCommand(ctx *Context) *UpdateCommand {
	return &UpdateCommand{
		BaseCommand: BaseCommand{
			Name:        "update",
			Description: "Re-synchronize equipment with current state",
			Usage:       "update [user]",
			Examples: []string{
				"update",
				"update user",
			},
		},
		ctx: ctx,
	}
}

func (c *UpdateCommand) Execute(args []string) error {
	c.ctx.runUpdate(args)
	if len(args) > 0 && strings.EqualFold(args[0], "user") {
		c.ctx.DisplayState()
	}
	return nil
}
