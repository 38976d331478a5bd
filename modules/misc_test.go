package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type miscOnlyState struct {
	TouchTone    structures.TouchTone
	AutoPowerOff structures.AutoPowerOff
	Cycle        structures.AmbientSoundModeCycle
}

func newMiscCollection() *ModuleCollection[miscOnlyState] {
	mc := NewModuleCollection[miscOnlyState]()
	AddTouchTone(mc,
		func(s miscOnlyState) structures.TouchTone { return s.TouchTone },
		func(s *miscOnlyState, v structures.TouchTone) { s.TouchTone = v },
	)
	AddAutoPowerOff(mc,
		func(s miscOnlyState) structures.AutoPowerOff { return s.AutoPowerOff },
		func(s *miscOnlyState, v structures.AutoPowerOff) { s.AutoPowerOff = v },
		[]string{"5m", "10m", "20m", "30m", "60m"},
	)
	AddAmbientSoundModeCycle(mc,
		func(s miscOnlyState) structures.AmbientSoundModeCycle { return s.Cycle },
		func(s *miscOnlyState, v structures.AmbientSoundModeCycle) { s.Cycle = v },
	)
	return mc
}

func TestToggleModuleFlipsAndCommits(t *testing.T) {
	mc := newMiscCollection()
	current := miscOnlyState{TouchTone: false}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdTouchTone: settings.BoolValue(true),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state miscOnlyState
	mc.Commit(&state, target)
	require.True(t, bool(state.TouchTone))
}

func TestToggleModuleNoChangeEmitsNoPacket(t *testing.T) {
	mc := newMiscCollection()
	current := miscOnlyState{TouchTone: true}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdTouchTone: settings.BoolValue(true),
	})
	require.NoError(t, err)
	require.Empty(t, packets)
}

func TestAutoPowerOffDurationSelectByName(t *testing.T) {
	mc := newMiscCollection()
	current := miscOnlyState{AutoPowerOff: structures.AutoPowerOff{IsEnabled: true, Index: 0}}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdAutoPowerOffDuration: settings.EnumValue("30m"),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state miscOnlyState
	mc.Commit(&state, target)
	require.Equal(t, uint8(3), state.AutoPowerOff.Index)
	require.True(t, state.AutoPowerOff.IsEnabled, "changing duration must not disturb the enabled flag")
}

func TestAmbientSoundModeCycleRoundTrip(t *testing.T) {
	mc := newMiscCollection()
	current := miscOnlyState{Cycle: structures.AmbientSoundModeCycle{Normal: true}}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdAmbientSoundModeCycle: settings.StringVecValue([]string{"Normal", "NoiseCanceling"}),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state miscOnlyState
	mc.Commit(&state, target)
	require.True(t, state.Cycle.Normal)
	require.True(t, state.Cycle.NoiseCanceling)
	require.False(t, state.Cycle.Transparency)
}
