package commands

import "github.com/mhanski/gearcmd/pkg/logging"

// TestCommand is a scratch verb for host experimentation. It does nothing
// beyond a debug log; hosts intercept it via the pre-dispatch hook.
type TestCommand struct {
	BaseCommand
	ctx *Context
}

func NewTestCommand(ctx *Context) *TestCommand {
	return &TestCommand{
		BaseCommand: BaseCommand{
			Name:        "test",
			Description: "Scratch verb for host experimentation",
			Usage:       "test [args...]",
			Hidden:      true,
		},
		ctx: ctx,
	}
}

func (c *TestCommand) Execute(args []string) error {
	logger := c.ctx.Logger
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	logger.Debug("test verb invoked", "args", args)
	return nil
}
