package commands

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/state"
)

// StatusCommand announces the current-state summary line. Read-only.
type StatusCommand struct {
	BaseCommand
	ctx *Context
}

func NewStatusCommand(ctx *Context) *StatusCommand {
	return &StatusCommand{
		BaseCommand: BaseCommand{
			Name:        "status",
			Description: "Show the current combat configuration",
			Usage:       "status",
			Aliases:     []string{"st"},
		},
		ctx: ctx,
	}
}

func (c *StatusCommand) Execute(args []string) error {
	c.ctx.DisplayState()
	return nil
}

// FormatStateSummary composes the one-line state summary: melee mode pair,
// weaponskill mode, active defense, kiting, and any non-default targeting.
func FormatStateSummary(s *state.State, reg *state.ModeRegistry) string {
	parts := []string{
		fmt.Sprintf("Melee: %s/%s", s.OffenseMode, s.DefenseMode),
		fmt.Sprintf("WS: %s", s.WeaponskillMode),
	}

	if s.Defense.Active {
		parts = append(parts, s.DefenseDescription())
	}

	parts = append(parts, fmt.Sprintf("Kiting: %s", onOff(s.Kiting)))

	if s.PCTargetMode != reg.First(state.FieldTarget) {
		parts = append(parts, fmt.Sprintf("Target PC: %s", s.PCTargetMode))
	}
	if s.SelectNPCTargets {
		parts = append(parts, "Target NPCs")
	}

	return strings.Join(parts, ", ")
}
