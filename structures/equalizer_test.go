package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCustomEqualizerConfigurationClampsOutOfRangeBands(t *testing.T) {
	cfg := NewCustomEqualizerConfiguration([][]int8{{-120, 0, 127}})
	require.True(t, cfg.IsCustom())
	require.Equal(t, CustomPresetID, cfg.PresetID)
	require.Equal(t, []int8{MinVolume, 0, MaxVolume}, cfg.VolumeAdjustments[0])
}

func TestNewPresetEqualizerConfigurationIsNotCustom(t *testing.T) {
	cfg := NewPresetEqualizerConfiguration(1, [][]int8{{1, 2}})
	require.False(t, cfg.IsCustom())
}

func TestChannelsAndBandsReportShape(t *testing.T) {
	cfg := NewPresetEqualizerConfiguration(1, [][]int8{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, cfg.Channels())
	require.Equal(t, 3, cfg.Bands())

	empty := EqualizerConfiguration{}
	require.Equal(t, 0, empty.Channels())
	require.Equal(t, 0, empty.Bands())
}

func TestPresetIDBytesIsLittleEndian(t *testing.T) {
	cfg := EqualizerConfiguration{PresetID: 0x0102}
	require.Equal(t, []byte{0x02, 0x01}, cfg.PresetIDBytes())
}

func TestDRCBytesCompressesBeyondKneeLeavesSmallValuesAlone(t *testing.T) {
	out := DRCBytes([]int8{10, -10, 60, -60})
	require.Equal(t, byte(130), out[0]) // 10 -> 10+120
	require.Equal(t, byte(110), out[1]) // -10 -> -10+120
	// 60 beyond the 30 knee compresses to 30+(60-30)/2=45, then +120
	require.Equal(t, byte(165), out[2])
	require.Equal(t, byte(75), out[3])
}

func TestChannelBytesAppliesThe120Offset(t *testing.T) {
	require.Equal(t, []byte{0x79, 0x77}, ChannelBytes([]int8{1, -1}))
}

func TestEncodeDecodeVolumeByteMatchesOriginalTestVector(t *testing.T) {
	// From the original implementation's own hand-crafted packet test:
	// -60 -> 0x3c, 60 -> 0xb4, 120 -> 0xf0, -120 -> 0x00.
	require.Equal(t, byte(0x3c), EncodeVolumeByte(-60))
	require.Equal(t, byte(0xb4), EncodeVolumeByte(60))
	require.Equal(t, byte(0xf0), EncodeVolumeByte(120))
	require.Equal(t, byte(0x00), EncodeVolumeByte(-120))

	require.Equal(t, int8(-60), DecodeVolumeByte(0x3c))
	require.Equal(t, int8(60), DecodeVolumeByte(0xb4))
	require.Equal(t, int8(120), DecodeVolumeByte(0xf0))
	require.Equal(t, int8(-120), DecodeVolumeByte(0x00))
}

func TestExportImportEqualizerStringRoundTrips(t *testing.T) {
	cfg := NewPresetEqualizerConfiguration(1, [][]int8{{1, -2, 3}, {-4, 5, -6}})
	s := cfg.ExportString()

	out, err := ImportEqualizerString(s, 2, 3)
	require.NoError(t, err)
	require.Equal(t, cfg.VolumeAdjustments, out)
}

func TestImportEqualizerStringRejectsWrongShape(t *testing.T) {
	cfg := NewPresetEqualizerConfiguration(1, [][]int8{{1, 2, 3}})
	s := cfg.ExportString()

	_, err := ImportEqualizerString(s, 2, 3)
	require.Error(t, err)
}
