// Package commands implements the combat-state command interpreter: a
// registry of verb handlers, the dispatcher that routes raw command lines
// to them, and the handlers themselves (toggle, activate, cycle, set,
// reset, update, showset, naked, status).
package commands

// Command represents a command that can be executed
type Command interface {
	// Metadata
	GetName() string
	GetDescription() string
	GetUsage() string
	GetExamples() []string
	GetAliases() []string
	IsHidden() bool

	// Execution. A nil return means the command was handled and state/side
	// effects were applied; a non-nil return means validation failed and
	// nothing changed.
	Execute(args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Aliases     []string
	Hidden      bool
}

func (c *BaseCommand) GetName() string        { return c.Name }
func (c *BaseCommand) GetDescription() string { return c.Description }
func (c *BaseCommand) GetUsage() string       { return c.Usage }
func (c *BaseCommand) GetExamples() []string  { return c.Examples }
func (c *BaseCommand) GetAliases() []string   { return c.Aliases }
func (c *BaseCommand) IsHidden() bool         { return c.Hidden }
