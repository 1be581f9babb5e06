package commands

import (
	"fmt"
	"testing"

	"github.com/mhanski/gearcmd/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleDefenseModeSequence(t *testing.T) {
	ctx, notifier, _ := newTestContext(t)
	cmd := NewCycleCommand(ctx)

	// Registry list is [Normal, PhalanxPhysical, Seigan]; starting at
	// Normal the cycle walks the list and wraps back to the first entry.
	expected := []string{"PhalanxPhysical", "Seigan", "Normal"}
	for i, want := range expected {
		require.NoError(t, cmd.Execute([]string{"defensemode"}))
		assert.Equal(t, want, ctx.State.DefenseMode, "cycle %d", i+1)
		assert.Equal(t, fmt.Sprintf("Defense mode is now %s.", want), notifier.last())
	}
}

func TestCycleFromUnlistedValueLandsOnFirstEntry(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.State.OffenseMode = "SomethingCustom"

	require.NoError(t, NewCycleCommand(ctx).Execute([]string{"offensemode"}))
	assert.Equal(t, "Normal", ctx.State.OffenseMode)
}

func TestCycleFullLoopRestoresValue(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	cmd := NewCycleCommand(ctx)
	ctx.State.WeaponskillMode = "Selective"

	for i := 0; i < 3; i++ {
		require.NoError(t, cmd.Execute([]string{"weaponskillmode"}))
	}
	assert.Equal(t, "Selective", ctx.State.WeaponskillMode)
}

func TestCycleWsAlias(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	require.NoError(t, NewCycleCommand(ctx).Execute([]string{"wsmode"}))
	assert.Equal(t, "Selective", ctx.State.WeaponskillMode)
}

func TestCycleCaseInsensitiveSuffix(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	require.NoError(t, NewCycleCommand(ctx).Execute([]string{"OffenseMode"}))
	assert.Equal(t, "Acc", ctx.State.OffenseMode)
}

func TestCycleExtensionField(t *testing.T) {
	ctx, notifier, _ := newTestContext(t)

	current := "Ignis"
	ctx.Resolver.SetExtension(state.Extension{
		ModeTable: func(field string) ([]string, string, bool) {
			if field == "Runeelement" {
				return []string{"Ignis", "Gelus", "Flabra"}, current, true
			}
			return nil, "", false
		},
		SetMode: func(field, value string) bool {
			if field != "Runeelement" {
				return false
			}
			current = value
			return true
		},
	})

	require.NoError(t, NewCycleCommand(ctx).Execute([]string{"runeelementmode"}))
	assert.Equal(t, "Gelus", current)
	assert.Equal(t, "Runeelement mode is now Gelus.", notifier.last())
}

func TestCycleValidationFailures(t *testing.T) {
	ctx, _, renderer := newTestContext(t)
	cmd := NewCycleCommand(ctx)

	assert.ErrorIs(t, cmd.Execute(nil), ErrMissingParameter)
	assert.ErrorIs(t, cmd.Execute([]string{"offense"}), ErrUnknownField, "missing mode suffix")
	assert.ErrorIs(t, cmd.Execute([]string{"bogusmode"}), ErrUnknownField)
	assert.Empty(t, renderer.renders)
}

func TestCycleUpdateHookReceivesAutoTrigger(t *testing.T) {
	ctx, _, renderer := newTestContext(t)
	var gotTokens []string
	ctx.Hooks.PreUpdate = func(tokens []string) bool {
		gotTokens = tokens
		return true
	}

	require.NoError(t, NewCycleCommand(ctx).Execute([]string{"castingmode"}))
	assert.Equal(t, []string{"auto"}, gotTokens)
	assert.Empty(t, renderer.renders, "handled pre-update hook should suppress the default render")
}
