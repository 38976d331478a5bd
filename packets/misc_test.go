package packets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/structures"
)

func TestSetTouchToneEncodesSingleBoolByte(t *testing.T) {
	require.Equal(t, []byte{1}, SetTouchTone(true).Body)
	require.Equal(t, []byte{0}, SetTouchTone(false).Body)
	require.Equal(t, CommandSetTouchTone, SetTouchTone(true).Command)
}

func TestSetAutoPowerOffEncodesEnabledThenIndex(t *testing.T) {
	p := SetAutoPowerOff(structures.AutoPowerOff{IsEnabled: true, Index: 3})
	require.Equal(t, CommandSetAutoPowerOff, p.Command)
	require.Equal(t, []byte{1, 3}, p.Body)
}

func TestSetLimitHighVolumeEncodesSingleBoolByte(t *testing.T) {
	require.Equal(t, []byte{1}, SetLimitHighVolume(true).Body)
	require.Equal(t, []byte{0}, SetLimitHighVolume(false).Body)
}

func TestSetAmbientSoundModeCycleEncodesBitfield(t *testing.T) {
	cycle := structures.AmbientSoundModeCycle{Normal: true, NoiseCanceling: true}
	p := SetAmbientSoundModeCycle(cycle)
	require.Equal(t, CommandSetAmbientSoundModeCycle, p.Command)
	require.Equal(t, []byte{cycle.Byte()}, p.Body)
}
