package commands

import (
	"testing"

	"github.com/mhanski/gearcmd/pkg/equipment"
	"github.com/mhanski/gearcmd/pkg/logging"
	"github.com/mhanski/gearcmd/pkg/state"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	messages   []string
	priorities []equipment.Priority
}

func (n *recordingNotifier) Notify(priority equipment.Priority, message string) {
	n.priorities = append(n.priorities, priority)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) last() string {
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

// recordingRenderer captures render and slot operations.
type recordingRenderer struct {
	renders      []string
	enabledSlots [][]equipment.Slot
	appliedSets  []equipment.Set
}

func (r *recordingRenderer) RenderEquipment(trigger string) {
	r.renders = append(r.renders, trigger)
}

func (r *recordingRenderer) SetSlotsEnabled(slots ...equipment.Slot) {
	r.enabledSlots = append(r.enabledSlots, slots)
}

func (r *recordingRenderer) ApplyEquipmentSet(set equipment.Set) {
	r.appliedSets = append(r.appliedSets, set)
}

// testRegistry returns a mode registry with multi-entry lists so cycling
// and membership checks have something to chew on.
func testRegistry(t *testing.T) *state.ModeRegistry {
	t.Helper()
	reg := state.NewModeRegistry()
	require.NoError(t, reg.SetList("Offense", []string{"Normal", "Acc", "Att"}))
	require.NoError(t, reg.SetList("Defense", []string{"Normal", "PhalanxPhysical", "Seigan"}))
	require.NoError(t, reg.SetList("Weaponskill", []string{"Normal", "Selective", "Skillchain"}))
	require.NoError(t, reg.SetList("Physicaldefense", []string{"Default", "Turtle"}))
	return reg
}

func newTestContext(t *testing.T) (*Context, *recordingNotifier, *recordingRenderer) {
	t.Helper()
	reg := testRegistry(t)
	s := state.New(reg)
	notifier := &recordingNotifier{}
	renderer := &recordingRenderer{}
	ctx := &Context{
		State:    s,
		Resolver: state.NewResolver(s, reg),
		Notifier: notifier,
		Renderer: renderer,
		Status:   equipment.StaticStatusProvider{Status: "Idle"},
		Logger:   logging.NewDisabledLogger(),
	}
	return ctx, notifier, renderer
}
