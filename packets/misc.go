package packets

import (
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// SetTouchTone builds the outbound packet for the touch-control
// confirmation tone toggle.
func SetTouchTone(v structures.TouchTone) wire.Packet {
	b := byte(0)
	if v {
		b = 1
	}
	return wire.Packet{Command: CommandSetTouchTone, Body: []byte{b}}
}

// SetAutoPowerOff builds the outbound packet for the auto-power-off
// timer: enabled flag, then the model's duration-table index.
func SetAutoPowerOff(v structures.AutoPowerOff) wire.Packet {
	enabled := byte(0)
	if v.IsEnabled {
		enabled = 1
	}
	return wire.Packet{Command: CommandSetAutoPowerOff, Body: []byte{enabled, v.Index}}
}

// SetLimitHighVolume builds the outbound packet for the high-volume
// safety limiter toggle.
func SetLimitHighVolume(v structures.LimitHighVolume) wire.Packet {
	b := byte(0)
	if v {
		b = 1
	}
	return wire.Packet{Command: CommandSetLimitHighVolume, Body: []byte{b}}
}

// SetAmbientSoundModeCycle builds the outbound packet for the
// ambient-sound-mode cycle bitfield the physical button steps through.
func SetAmbientSoundModeCycle(v structures.AmbientSoundModeCycle) wire.Packet {
	return wire.Packet{Command: CommandSetAmbientSoundModeCycle, Body: []byte{v.Byte()}}
}
