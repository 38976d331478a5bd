package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type equalizerOnlyState struct {
	Eq structures.EqualizerConfiguration
}

var testBandHz = []uint32{100, 200, 400, 800, 1600, 3200, 6400, 12800}

var testPresets = PresetTable{
	Names: map[uint16]string{
		0x0000: "Signature",
		0x0001: "Bass Booster",
	},
	Adjustments: map[uint16][][]int8{
		0x0000: {make([]int8, 8), make([]int8, 8)},
		0x0001: {{40, 30, 10, 0, 0, 0, 0, 0}, {40, 30, 10, 0, 0, 0, 0, 0}},
	},
}

func newEqualizerCollection() *ModuleCollection[equalizerOnlyState] {
	mc := NewModuleCollection[equalizerOnlyState]()
	AddEqualizer(mc,
		func(s equalizerOnlyState) structures.EqualizerConfiguration { return s.Eq },
		func(s *equalizerOnlyState, v structures.EqualizerConfiguration) { s.Eq = v },
		testBandHz, testPresets,
	)
	return mc
}

func TestEqualizerPresetSelectionProducesOnePacket(t *testing.T) {
	mc := newEqualizerCollection()
	current := equalizerOnlyState{Eq: structures.NewPresetEqualizerConfiguration(0x0000, testPresets.Adjustments[0x0000])}

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdEqualizerPreset: settings.EnumValue("Bass Booster"),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state equalizerOnlyState
	mc.Commit(&state, target)
	require.Equal(t, uint16(0x0001), state.Eq.PresetID)
	require.Equal(t, testPresets.Adjustments[0x0001], state.Eq.VolumeAdjustments)
}

func TestEqualizerUnknownPresetNameRejected(t *testing.T) {
	mc := newEqualizerCollection()
	current := equalizerOnlyState{Eq: structures.NewPresetEqualizerConfiguration(0x0000, testPresets.Adjustments[0x0000])}

	_, _, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdEqualizerPreset: settings.EnumValue("Nonexistent"),
	})
	require.Error(t, err)
}

func TestEqualizerCustomCurveClampedAndFlattened(t *testing.T) {
	mc := newEqualizerCollection()
	current := equalizerOnlyState{Eq: structures.NewCustomEqualizerConfiguration([][]int8{make([]int8, 8), make([]int8, 8)})}

	flat := make([]int16, 16)
	flat[0] = 200 // out of [MinVolume, MaxVolume] range, must be clamped on commit

	target, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdVolumeAdjustments: settings.I16VecValue(flat),
	})
	require.NoError(t, err)
	require.Len(t, packets, 1)

	var state equalizerOnlyState
	mc.Commit(&state, target)
	require.True(t, state.Eq.IsCustom())
	require.Equal(t, int8(structures.MaxVolume), state.Eq.VolumeAdjustments[0][0])
}

func TestEqualizerNoChangeEmitsNoPacket(t *testing.T) {
	mc := newEqualizerCollection()
	current := equalizerOnlyState{Eq: structures.NewPresetEqualizerConfiguration(0x0000, testPresets.Adjustments[0x0000])}

	_, packets, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdEqualizerPreset: settings.EnumValue("Signature"),
	})
	require.NoError(t, err)
	require.Empty(t, packets)
}

func TestEqualizerPresetOptionsAreSortedByPresetID(t *testing.T) {
	presets := PresetTable{
		Names: map[uint16]string{
			0x0003: "Bass Booster",
			0x0000: "Signature",
			0x0001: "Treble Booster",
		},
	}
	for i := 0; i < 20; i++ {
		require.Equal(t,
			[]string{"Signature", "Treble Booster", "Bass Booster", "Custom"},
			presetOptionNames(presets),
		)
	}
}
