package packets

import (
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// SetEqualizer builds the outbound packet for a plain equalizer write:
// preset ID followed by each channel's raw volume bytes.
func SetEqualizer(cfg structures.EqualizerConfiguration) wire.Packet {
	body := append([]byte{}, cfg.PresetIDBytes()...)
	for _, channel := range cfg.VolumeAdjustments {
		body = append(body, structures.ChannelBytes(channel)...)
	}
	return wire.Packet{Command: CommandSetEqualizer, Body: body}
}

// SetEqualizerWithDRC builds the outbound packet for a DRC-bearing
// equalizer write: preset ID, each channel's raw volume bytes, then
// each channel's DRC-compressed counterpart, per §4.5.
func SetEqualizerWithDRC(cfg structures.EqualizerConfiguration) wire.Packet {
	body := append([]byte{}, cfg.PresetIDBytes()...)
	for _, channel := range cfg.VolumeAdjustments {
		body = append(body, structures.ChannelBytes(channel)...)
	}
	for _, channel := range cfg.VolumeAdjustments {
		body = append(body, structures.DRCBytes(channel)...)
	}
	return wire.Packet{Command: CommandSetEqualizerWithDRC, Body: body}
}

// SetEqualizerWithHearID builds the outbound packet for a hear-ID-fused
// equalizer write: preset ID, each channel's raw volume bytes, the
// hear-ID enable byte (forced off so the chosen EQ wins), then the
// hear-ID's own per-channel adjustments, per §4.5 "with custom hear-ID".
func SetEqualizerWithHearID(cfg structures.EqualizerConfiguration, hearID structures.CustomHearId) wire.Packet {
	body := append([]byte{}, cfg.PresetIDBytes()...)
	for _, channel := range cfg.VolumeAdjustments {
		body = append(body, structures.ChannelBytes(channel)...)
	}

	disabled := hearID.WithDisabled()
	body = append(body, disabled.EnableByte())
	for _, channel := range disabled.VolumeAdjustments {
		body = append(body, structures.ChannelBytes(channel)...)
	}

	return wire.Packet{Command: CommandSetEqualizerWithHearID, Body: body}
}
