package commands

import "fmt"

// HelpCommand lists the registered verbs with their usage.
type HelpCommand struct {
	BaseCommand
	ctx      *Context
	registry *CommandRegistry
}

func NewHelpCommand(ctx *Context, registry *CommandRegistry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "List available commands",
			Usage:       "help",
			Aliases:     []string{"?"},
		},
		ctx:      ctx,
		registry: registry,
	}
}

func (c *HelpCommand) Execute(args []string) error {
	for _, cmd := range c.registry.GetAllCommands() {
		if cmd.IsHidden() {
			continue
		}
		c.ctx.announce(fmt.Sprintf("%s - %s", cmd.GetUsage(), cmd.GetDescription()))
	}
	return nil
}
