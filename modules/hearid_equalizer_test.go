package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type hearIDEqualizerOnlyState struct {
	Eq     structures.EqualizerConfiguration
	HearID structures.CustomHearId
}

func newHearIDEqualizerCollection() *ModuleCollection[hearIDEqualizerOnlyState] {
	mc := NewModuleCollection[hearIDEqualizerOnlyState]()
	AddEqualizerWithHearID(mc,
		func(s hearIDEqualizerOnlyState) structures.EqualizerConfiguration { return s.Eq },
		func(s *hearIDEqualizerOnlyState, v structures.EqualizerConfiguration) { s.Eq = v },
		func(s hearIDEqualizerOnlyState) structures.CustomHearId { return s.HearID },
		testBandHz,
		testPresets,
	)
	return mc
}

func TestHearIDEqualizerPresetChangeFusesInHearIDProfile(t *testing.T) {
	mc := newHearIDEqualizerCollection()
	current := hearIDEqualizerOnlyState{
		Eq:     structures.NewPresetEqualizerConfiguration(0, testPresets.Adjustments[0]),
		HearID: structures.CustomHearId{IsEnabled: true},
	}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdEqualizerPreset: settings.EnumValue("Bass Booster"),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1, "fusing in the hear-ID profile must not add a second packet")

	var state hearIDEqualizerOnlyState
	mc.Commit(&state, target)
	require.Equal(t, uint16(1), state.Eq.PresetID)
}

func TestHearIDEnabledSettingIsReadOnly(t *testing.T) {
	mc := newHearIDEqualizerCollection()
	current := hearIDEqualizerOnlyState{HearID: structures.CustomHearId{IsEnabled: true}}

	s, err := mc.Setting(current, settings.IdHearIDEnabled)
	require.NoError(t, err)
	require.True(t, s.BoolValue)

	_, _, err = mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdHearIDEnabled: settings.BoolValue(false),
	})
	require.Error(t, err)
}

func TestHearIDEqualizerNoChangeEmitsNoPacket(t *testing.T) {
	mc := newHearIDEqualizerCollection()
	current := hearIDEqualizerOnlyState{Eq: structures.NewPresetEqualizerConfiguration(1, testPresets.Adjustments[1])}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdEqualizerPreset: settings.EnumValue("Bass Booster"),
	})
	require.NoError(t, err)
	require.Empty(t, packets)
}
