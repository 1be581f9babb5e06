package commands

import (
	"testing"

	"github.com/mhanski/gearcmd/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFlipsFlag(t *testing.T) {
	ctx, notifier, renderer := newTestContext(t)
	cmd := NewToggleCommand(ctx)

	require.NoError(t, cmd.Execute([]string{"kiting"}))
	assert.True(t, ctx.State.Kiting)
	assert.Equal(t, "Kiting is now on.", notifier.messages[0])
	assert.Equal(t, []string{"Idle"}, renderer.renders, "toggle should conclude with an equipment update")
}

func TestToggleInvolution(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	cmd := NewToggleCommand(ctx)

	for _, field := range []string{"defense", "kite", "target"} {
		t.Run(field, func(t *testing.T) {
			before := *ctx.State
			require.NoError(t, cmd.Execute([]string{field}))
			require.NoError(t, cmd.Execute([]string{field}))
			assert.Equal(t, before, *ctx.State, "two toggles should restore the original state")
		})
	}
}

func TestToggleDefenseDescriptionFollowsDefenseType(t *testing.T) {
	ctx, notifier, _ := newTestContext(t)
	cmd := NewToggleCommand(ctx)

	require.NoError(t, cmd.Execute([]string{"defense"}))
	assert.True(t, ctx.State.Defense.Active)
	assert.Equal(t, "Physical defense (Default) is now on.", notifier.messages[0])

	ctx.State.Defense.Type = state.DefenseMagical
	ctx.State.Defense.MagicalMode = "Shellra"
	require.NoError(t, cmd.Execute([]string{"defense"}))
	assert.Equal(t, "Magical defense (Shellra) is now off.", notifier.last())
}

func TestToggleInvokesStateChangedHook(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	var gotDesc string
	var gotValue interface{}
	ctx.Hooks.StateChanged = func(description string, value interface{}) {
		gotDesc = description
		gotValue = value
	}

	require.NoError(t, NewToggleCommand(ctx).Execute([]string{"target"}))
	assert.Equal(t, "NPC targeting", gotDesc)
	assert.Equal(t, true, gotValue)
}

func TestToggleValidationFailures(t *testing.T) {
	ctx, notifier, renderer := newTestContext(t)
	cmd := NewToggleCommand(ctx)

	err := cmd.Execute(nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	err = cmd.Execute([]string{"stance"})
	assert.ErrorIs(t, err, ErrUnknownField)

	assert.Empty(t, notifier.messages, "failed toggles should be silent")
	assert.Empty(t, renderer.renders, "failed toggles should not trigger updates")
}
