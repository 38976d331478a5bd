package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirmwareVersionStringPadsToTwoDigits(t *testing.T) {
	require.Equal(t, "01.02", FirmwareVersion{Major: 1, Minor: 2}.String())
}

func TestButtonActionFromOrdinalDefaultsUnknownToNone(t *testing.T) {
	require.Equal(t, ButtonActionVolumeUp, ButtonActionFromOrdinal(0))
	require.Equal(t, ButtonActionGameMode, ButtonActionFromOrdinal(byte(ButtonActionGameMode)))
	require.Equal(t, ButtonActionNone, ButtonActionFromOrdinal(200))
}

func TestNewButtonConfigurationDefaultsEveryPositionToEnabledNone(t *testing.T) {
	cfg := NewButtonConfiguration(ButtonLeftSinglePress, ButtonRightLongPress)
	require.Len(t, cfg.Bindings, 2)
	for _, pos := range []ButtonPosition{ButtonLeftSinglePress, ButtonRightLongPress} {
		b := cfg.Bindings[pos]
		require.Equal(t, ButtonActionNone, b.Action)
		require.True(t, b.IsEnabled)
	}
}
