package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// SetCommand assigns an explicit value to a boolean flag, a mode field,
// or the max weaponskill distance. The three branches are mutually
// exclusive and tried in that order.
type SetCommand struct {
	BaseCommand
	ctx *Context
}

func NewSetCommand(ctx *Context) *SetCommand {
	return &SetCommand{
		BaseCommand: BaseCommand{
			Name:        "set",
			Description: "Set a field to an explicit value",
			Usage:       "set <field> <value>",
			Examples: []string{
				"set defense on",
				"set weaponskillmode Selective",
				"set distance 8",
			},
		},
		ctx: ctx,
	}
}

func (c *SetCommand) Execute(args []string) error {
	if len(args) < 2 {
		// "set distance" with no value would mean "use the current player
		// distance"; reading it from the game is not supported here.
		return fmt.Errorf("set: %w", ErrMissingParameter)
	}

	field := strings.ToLower(args[0])
	value := args[1]

	switch lower := strings.ToLower(value); {
	case lower == "on" || lower == "off" || lower == "true" || lower == "false":
		return c.setBool(field, lower == "on" || lower == "true")
	case strings.HasSuffix(field, "mode"):
		return c.setMode(args[0], value)
	case field == "distance":
		return c.setDistance(value)
	}
	return fmt.Errorf("set %q: %w", args[0], ErrUnknownField)
}

func (c *SetCommand) setBool(field string, value bool) error {
	bf, ok := lookupBoolField(field)
	if !ok {
		return fmt.Errorf("set %q: %w", field, ErrUnknownField)
	}

	bf.set(c.ctx.State, value)

	desc := bf.describe(c.ctx.State)
	c.ctx.announce(fmt.Sprintf("%s is now %s.", desc, onOff(value)))
	c.ctx.stateChanged(desc, value)
	c.ctx.RequestUpdate("auto")
	return nil
}

func (c *SetCommand) setMode(rawField, value string) error {
	field, ok := canonicalModeField(rawField)
	if !ok {
		return fmt.Errorf("set %q: %w", rawField, ErrUnknownField)
	}

	values, _, ok := c.ctx.Resolver.ModeTable(field)
	if !ok {
		return fmt.Errorf("set %q: %w", rawField, ErrUnknownField)
	}

	// Membership is case-sensitive: the value must match the list entry
	// exactly as registered.
	member := false
	for _, v := range values {
		if v == value {
			member = true
			break
		}
	}
	if !member {
		return fmt.Errorf("set %s %q: %w", rawField, value, ErrInvalidModeValue)
	}

	if !c.ctx.Resolver.Apply(field, value) {
		return fmt.Errorf("set %q: %w", rawField, ErrUnknownField)
	}

	c.ctx.announce(fmt.Sprintf("%s mode is now %s.", field, value))
	c.ctx.stateChanged(field, value)
	c.ctx.RequestUpdate("auto")
	return nil
}

func (c *SetCommand) setDistance(value string) error {
	distance, err := strconv.ParseFloat(value, 64)
	if err != nil || distance < 0 {
		// Distance errors always notify, independent of the debug flag.
		c.ctx.announceError(fmt.Sprintf("Invalid distance value: %s", value))
		return fmt.Errorf("set distance %q: %w", value, ErrInvalidNumber)
	}

	c.ctx.State.MaxWeaponskillDistance = distance
	c.ctx.RequestUpdate("auto")
	return nil
}
