package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type soundModesTypeTwoOnlyState struct {
	Modes structures.SoundModesTypeTwo
}

func newSoundModesTypeTwoCollection() *ModuleCollection[soundModesTypeTwoOnlyState] {
	mc := NewModuleCollection[soundModesTypeTwoOnlyState]()
	AddSoundModesTypeTwo(mc,
		func(s soundModesTypeTwoOnlyState) structures.SoundModesTypeTwo { return s.Modes },
		func(s *soundModesTypeTwoOnlyState, v structures.SoundModesTypeTwo) { s.Modes = v },
	)
	return mc
}

// Type-two firmware accepts the whole struct in one write, so unlike
// classic SoundModes there is no forced-ANC quirk here: any change is
// exactly one packet.
func TestSoundModesTypeTwoChangeEmitsExactlyOnePacket(t *testing.T) {
	mc := newSoundModesTypeTwoCollection()
	current := soundModesTypeTwoOnlyState{Modes: structures.SoundModesTypeTwo{
		Ambient: structures.AmbientSoundModeNormal,
	}}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdAdaptiveNoiseCanceling: settings.I32Value(7),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state soundModesTypeTwoOnlyState
	mc.Commit(&state, target)
	require.Equal(t, structures.AdaptiveNoiseCanceling(7), state.Modes.AdaptiveNoiseCanceling)
}

func TestSoundModesTypeTwoNoChangeEmitsNoPacket(t *testing.T) {
	mc := newSoundModesTypeTwoCollection()
	current := soundModesTypeTwoOnlyState{Modes: structures.SoundModesTypeTwo{
		WindNoiseSuppression: true,
	}}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdWindNoiseSuppression: settings.BoolValue(true),
	})
	require.NoError(t, err)
	require.Empty(t, packets)
}
