package structures

import (
	"encoding/base64"
	"encoding/binary"
)

// CustomPresetID marks an EqualizerConfiguration as holding user-chosen
// volume adjustments rather than a stock preset.
const CustomPresetID uint16 = 0xFEFE

// MinVolume and MaxVolume bound a single equalizer band adjustment, in
// tenths of a dB, matching the Soundcore wire convention (the wire byte
// for a band is the adjustment plus 120, so these bounds are what keep
// that byte in range).
const (
	MinVolume int8 = -120
	MaxVolume int8 = 120
)

// EqualizerConfiguration is an equalizer curve with a per-model number of
// channels (1 for mono, 2 for stereo) and bands (typically 8 or 10). Go
// has no const generics, so channel/band shape is runtime data rather
// than a type parameter; per-model builders are responsible for keeping
// the shape consistent with what their packets expect.
type EqualizerConfiguration struct {
	PresetID          uint16
	VolumeAdjustments [][]int8
}

// NewPresetEqualizerConfiguration builds a configuration from a stock
// preset table lookup; callers provide the resolved adjustments since the
// preset table itself is per-model.
func NewPresetEqualizerConfiguration(presetID uint16, adjustments [][]int8) EqualizerConfiguration {
	return EqualizerConfiguration{PresetID: presetID, VolumeAdjustments: adjustments}
}

// NewCustomEqualizerConfiguration builds a user-chosen (non-preset)
// configuration, clamping every band into [MinVolume, MaxVolume].
func NewCustomEqualizerConfiguration(adjustments [][]int8) EqualizerConfiguration {
	clamped := make([][]int8, len(adjustments))
	for i, channel := range adjustments {
		row := make([]int8, len(channel))
		for j, v := range channel {
			row[j] = clampVolume(v)
		}
		clamped[i] = row
	}
	return EqualizerConfiguration{PresetID: CustomPresetID, VolumeAdjustments: clamped}
}

// IsCustom reports whether this configuration holds user-chosen volumes.
func (e EqualizerConfiguration) IsCustom() bool {
	return e.PresetID == CustomPresetID
}

// Channels reports the number of independent EQ channels.
func (e EqualizerConfiguration) Channels() int { return len(e.VolumeAdjustments) }

// Bands reports the number of bands per channel, or 0 if there are no
// channels.
func (e EqualizerConfiguration) Bands() int {
	if len(e.VolumeAdjustments) == 0 {
		return 0
	}
	return len(e.VolumeAdjustments[0])
}

func clampVolume(v int8) int8 {
	switch {
	case v < MinVolume:
		return MinVolume
	case v > MaxVolume:
		return MaxVolume
	default:
		return v
	}
}

// applyDRC is the deterministic per-band dynamic range compression
// transform: it pulls extreme adjustments toward the center of the
// range while leaving small adjustments untouched, the same shape as the
// firmware's own loudness-compression curve.
func applyDRC(v int8) int8 {
	const knee = 30 // tenths of a dB; beyond this, compress
	if v > knee {
		return knee + (v-knee)/2
	}
	if v < -knee {
		return -knee + (v+knee)/2
	}
	return v
}

// DRCBytes returns the DRC-compressed counterpart of a single channel's
// volume adjustments, wire-encoded.
func DRCBytes(channel []int8) []byte {
	out := make([]byte, len(channel))
	for i, v := range channel {
		out[i] = EncodeVolumeByte(applyDRC(v))
	}
	return out
}

// ChannelBytes returns the wire-encoded volume adjustments for a single
// channel.
func ChannelBytes(channel []int8) []byte {
	out := make([]byte, len(channel))
	for i, v := range channel {
		out[i] = EncodeVolumeByte(v)
	}
	return out
}

// EncodeVolumeByte converts a signed volume adjustment into its wire
// byte: value + 120. Confirmed against the original's own hand-crafted
// test vector (set_equalizer_with_drc.rs), where -60 -> 0x3c, 60 -> 0xb4,
// 120 -> 0xf0, -120 -> 0x00.
func EncodeVolumeByte(v int8) byte {
	return byte(int16(clampVolume(v)) + 120)
}

// DecodeVolumeByte is EncodeVolumeByte's inverse: wire byte - 120,
// clamped into [MinVolume, MaxVolume]'s encoded range first so a
// malformed byte can't overflow int8.
func DecodeVolumeByte(b byte) int8 {
	if b > 240 {
		b = 240
	}
	return int8(int16(b) - 120)
}

// PresetIDBytes returns the little-endian encoding of the preset ID.
func (e EqualizerConfiguration) PresetIDBytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, e.PresetID)
	return b
}

// ExportString encodes the volume-adjustment curve as a portable string
// for the Setting.ImportString / Information.translated_value pairing
// used by the custom-equalizer-profile import/export flow.
func (e EqualizerConfiguration) ExportString() string {
	flat := make([]byte, 0, channelCount(e.VolumeAdjustments))
	for _, ch := range e.VolumeAdjustments {
		for _, v := range ch {
			flat = append(flat, byte(v))
		}
	}
	return base64.StdEncoding.EncodeToString(flat)
}

// ImportEqualizerString decodes a string previously produced by
// ExportString back into a flat list of per-channel adjustments, given
// the channel and band counts to reshape into.
func ImportEqualizerString(s string, channels, bands int) ([][]int8, error) {
	flat, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(flat) != channels*bands {
		return nil, errShortBody("equalizer import string", channels*bands, len(flat))
	}

	out := make([][]int8, channels)
	for c := 0; c < channels; c++ {
		row := make([]int8, bands)
		for b := 0; b < bands; b++ {
			row[b] = int8(flat[c*bands+b])
		}
		out[c] = row
	}
	return out, nil
}

func channelCount(v [][]int8) int {
	n := 0
	for _, ch := range v {
		n += len(ch)
	}
	return n
}
