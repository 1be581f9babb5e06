package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBooleanBranch(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"on", true},
		{"true", true},
		{"off", false},
		{"false", false},
		{"ON", true},
		{"Off", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ctx, _, _ := newTestContext(t)
			ctx.State.Kiting = !tt.want

			require.NoError(t, NewSetCommand(ctx).Execute([]string{"kiting", tt.value}))
			assert.Equal(t, tt.want, ctx.State.Kiting)
		})
	}
}

func TestSetOnOffMatchesDoubleToggle(t *testing.T) {
	setCtx, _, _ := newTestContext(t)
	toggleCtx, _, _ := newTestContext(t)

	set := NewSetCommand(setCtx)
	toggle := NewToggleCommand(toggleCtx)

	require.NoError(t, set.Execute([]string{"defense", "on"}))
	require.NoError(t, set.Execute([]string{"defense", "off"}))
	require.NoError(t, toggle.Execute([]string{"defense"}))
	require.NoError(t, toggle.Execute([]string{"defense"}))

	assert.Equal(t, *toggleCtx.State, *setCtx.State)
}

func TestSetModeBranch(t *testing.T) {
	ctx, notifier, _ := newTestContext(t)

	require.NoError(t, NewSetCommand(ctx).Execute([]string{"weaponskillmode", "Selective"}))
	assert.Equal(t, "Selective", ctx.State.WeaponskillMode)
	assert.Equal(t, "Weaponskill mode is now Selective.", notifier.last())
}

func TestSetModeRejectsUnlistedValue(t *testing.T) {
	ctx, notifier, renderer := newTestContext(t)

	err := NewSetCommand(ctx).Execute([]string{"weaponskillmode", "Bogus"})
	assert.ErrorIs(t, err, ErrInvalidModeValue)
	assert.Equal(t, "Normal", ctx.State.WeaponskillMode, "state must be unchanged on failure")
	assert.Empty(t, notifier.messages)
	assert.Empty(t, renderer.renders)
}

func TestSetModeMembershipIsCaseSensitive(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	err := NewSetCommand(ctx).Execute([]string{"weaponskillmode", "selective"})
	assert.ErrorIs(t, err, ErrInvalidModeValue)
}

func TestSetModeWsAlias(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	require.NoError(t, NewSetCommand(ctx).Execute([]string{"wsmode", "Skillchain"}))
	assert.Equal(t, "Skillchain", ctx.State.WeaponskillMode)
}

func TestSetDistance(t *testing.T) {
	ctx, notifier, renderer := newTestContext(t)

	require.NoError(t, NewSetCommand(ctx).Execute([]string{"distance", "8.5"}))
	assert.Equal(t, 8.5, ctx.State.MaxWeaponskillDistance)
	assert.Empty(t, notifier.messages, "the distance branch does not announce changes")
	assert.Len(t, renderer.renders, 1, "the distance branch still concludes with an update")
}

func TestSetDistanceInvalidAlwaysNotifies(t *testing.T) {
	ctx, notifier, _ := newTestContext(t)
	ctx.State.MaxWeaponskillDistance = 5

	err := NewSetCommand(ctx).Execute([]string{"distance", "notanumber"})
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Equal(t, float64(5), ctx.State.MaxWeaponskillDistance)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Invalid distance value: notanumber", notifier.messages[0])
}

func TestSetDistanceRejectsNegative(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	err := NewSetCommand(ctx).Execute([]string{"distance", "-3"})
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Equal(t, float64(0), ctx.State.MaxWeaponskillDistance)
}

func TestSetBooleanValueWinsOverModeSuffix(t *testing.T) {
	// Branch order: a boolean value is claimed by the boolean branch even
	// when the field carries the mode suffix, and then fails field lookup.
	ctx, _, _ := newTestContext(t)

	err := NewSetCommand(ctx).Execute([]string{"offensemode", "on"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSetValidationFailures(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	cmd := NewSetCommand(ctx)

	assert.ErrorIs(t, cmd.Execute(nil), ErrMissingParameter)
	assert.ErrorIs(t, cmd.Execute([]string{"defense"}), ErrMissingParameter)
	// "set distance" with no value: auto-read is unsupported.
	assert.ErrorIs(t, cmd.Execute([]string{"distance"}), ErrMissingParameter)
	assert.ErrorIs(t, cmd.Execute([]string{"somefield", "value"}), ErrUnknownField)
}
