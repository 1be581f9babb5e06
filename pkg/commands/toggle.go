package commands

import (
	"fmt"
	"strings"
)

// ToggleCommand flips a boolean combat flag.
type ToggleCommand struct {
	BaseCommand
	ctx *Context
}

func NewToggleCommand(ctx *Context) *ToggleCommand {
	return &ToggleCommand{
		BaseCommand: BaseCommand{
			Name:        "toggle",
			Description: "Toggle a boolean combat flag",
			Usage:       "toggle <defense|kite|target>",
			Examples: []string{
				"toggle defense",
				"toggle kiting",
			},
		},
		ctx: ctx,
	}
}

func (c *ToggleCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("toggle: %w", ErrMissingParameter)
	}

	field, ok := lookupBoolField(strings.ToLower(args[0]))
	if !ok {
		return fmt.Errorf("toggle %q: %w", args[0], ErrUnknownField)
	}

	value := !field.get(c.ctx.State)
	field.set(c.ctx.State, value)

	desc := field.describe(c.ctx.State)
	c.ctx.announce(fmt.Sprintf("%s is now %s.", desc, onOff(value)))
	c.ctx.stateChanged(desc, value)
	c.ctx.RequestUpdate("auto")
	return nil
}
