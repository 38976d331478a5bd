package packets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/structures"
)

func TestRequestStateUsesStateUpdateCommand(t *testing.T) {
	p := RequestState()
	require.Equal(t, CommandStateUpdate, p.Command)
	require.Empty(t, p.Body)
}

func TestSetSoundModesEncodesFourBytes(t *testing.T) {
	modes := structures.SoundModes{
		Ambient:              structures.AmbientSoundModeNormal,
		NoiseCancelingMode:   structures.NoiseCancelingModeOutdoor,
		TransparencyMode:     structures.TransparencyModeVocalMode,
		CustomNoiseCanceling: structures.NewCustomNoiseCanceling(7),
	}
	p := SetSoundModes(modes)
	require.Equal(t, CommandSetSoundModes, p.Command)
	require.Equal(t, []byte{byte(structures.AmbientSoundModeNormal), 1, 1, 7}, p.Body)
}

func TestParseSoundModeUpdateDelegatesToStructures(t *testing.T) {
	modes, err := ParseSoundModeUpdate(make([]byte, 4))
	require.NoError(t, err)
	require.Equal(t, structures.AmbientSoundModeNormal, modes.Ambient)
}

func TestParseBatteryLevelUpdateClampsAboveFive(t *testing.T) {
	bat, err := ParseBatteryLevelUpdate([]byte{9, 3})
	require.NoError(t, err)
	require.Equal(t, uint8(5), bat.Left.Level)
	require.Equal(t, uint8(3), bat.Right.Level)
}

func TestParseBatteryLevelUpdateRejectsShortBody(t *testing.T) {
	_, err := ParseBatteryLevelUpdate([]byte{1})
	require.Error(t, err)
}

func TestParseBatteryChargingUpdate(t *testing.T) {
	charging, err := ParseBatteryChargingUpdate([]byte{1, 0})
	require.NoError(t, err)
	require.True(t, charging.Left)
	require.False(t, charging.Right)
}

func TestSetButtonConfigurationEncodesPositionActionEnabled(t *testing.T) {
	p := SetButtonConfiguration(structures.ButtonLeftSinglePress, structures.ButtonBinding{
		Action:    structures.ButtonActionVolumeUp,
		IsEnabled: true,
	})
	require.Equal(t, CommandSetButtonConfiguration, p.Command)
	require.Equal(t, []byte{byte(structures.ButtonLeftSinglePress), byte(structures.ButtonActionVolumeUp), 1}, p.Body)
}

func TestResetButtonConfigurationCarriesNoBody(t *testing.T) {
	p := ResetButtonConfiguration()
	require.Equal(t, CommandResetButtonConfiguration, p.Command)
	require.Empty(t, p.Body)
}
