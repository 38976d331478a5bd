package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type soundModesOnlyState struct {
	Modes structures.SoundModes
}

func newSoundModesCollection() *ModuleCollection[soundModesOnlyState] {
	mc := NewModuleCollection[soundModesOnlyState]()
	AddSoundModes(mc,
		func(s soundModesOnlyState) structures.SoundModes { return s.Modes },
		func(s *soundModesOnlyState, m structures.SoundModes) { s.Modes = m },
	)
	return mc
}

// Changing NoiseCancelingMode while not already in
// AmbientSoundModeNoiseCanceling must emit exactly three packets: force
// into ANC, apply the real change, then restore the target mode (§4.5).
func TestSoundModesQuirkEmitsThreePackets(t *testing.T) {
	mc := newSoundModesCollection()

	current := soundModesOnlyState{Modes: structures.SoundModes{
		Ambient:            structures.AmbientSoundModeNormal,
		NoiseCancelingMode: structures.NoiseCancelingModeTransport,
	}}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdNoiseCancelingMode: settings.EnumValue("Outdoor"),
	})

	require.NoError(t, err)
	require.Len(t, packets, 3)
}

// When already in NoiseCanceling ambient mode, a NoiseCancelingMode
// change is a single packet: no forced mode switch is needed.
func TestSoundModesQuirkSkippedWhenAlreadyANC(t *testing.T) {
	mc := newSoundModesCollection()

	current := soundModesOnlyState{Modes: structures.SoundModes{
		Ambient:            structures.AmbientSoundModeNoiseCanceling,
		NoiseCancelingMode: structures.NoiseCancelingModeTransport,
	}}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdNoiseCancelingMode: settings.EnumValue("Outdoor"),
	})

	require.NoError(t, err)
	require.Len(t, packets, 1)
}

// A change that doesn't touch NoiseCancelingMode at all never triggers
// the quirk, regardless of ambient mode.
func TestSoundModesNoQuirkWhenNoiseCancelingModeUnchanged(t *testing.T) {
	mc := newSoundModesCollection()

	current := soundModesOnlyState{Modes: structures.SoundModes{
		Ambient:            structures.AmbientSoundModeNormal,
		NoiseCancelingMode: structures.NoiseCancelingModeTransport,
	}}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdAmbientSoundMode: settings.EnumValue("Transparency"),
	})

	require.NoError(t, err)
	require.Len(t, packets, 1)
}

func TestSoundModesCommitAppliesTargetState(t *testing.T) {
	mc := newSoundModesCollection()

	current := soundModesOnlyState{Modes: structures.SoundModes{
		Ambient:            structures.AmbientSoundModeNormal,
		NoiseCancelingMode: structures.NoiseCancelingModeTransport,
	}}

	target, _, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdNoiseCancelingMode: settings.EnumValue("Indoor"),
	})
	require.NoError(t, err)

	state := current
	mc.Commit(&state, target)
	require.Equal(t, structures.NoiseCancelingModeIndoor, state.Modes.NoiseCancelingMode)
	require.Equal(t, structures.AmbientSoundModeNormal, state.Modes.Ambient)
}
