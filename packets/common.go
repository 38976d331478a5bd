package packets

import (
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// RequestState builds the outbound packet that asks the device to emit
// its full state-update packet.
func RequestState() wire.Packet {
	return wire.Packet{Command: CommandStateUpdate}
}

// RequestSerialAndFirmware builds the outbound packet that asks for the
// serial number and firmware version, for models that do not bundle
// these into their state-update packet.
func RequestSerialAndFirmware() wire.Packet {
	return wire.Packet{Command: CommandSerialAndFirmware}
}

// SetSoundModes builds the outbound packet for a classic SoundModes
// write.
func SetSoundModes(modes structures.SoundModes) wire.Packet {
	return wire.Packet{Command: CommandSetSoundModes, Body: modes.Bytes()}
}

// SetSoundModesTypeTwo builds the outbound packet for a type-two
// SoundModes write.
func SetSoundModesTypeTwo(modes structures.SoundModesTypeTwo) wire.Packet {
	return wire.Packet{Command: CommandSetSoundModes, Body: modes.Bytes()}
}

// ParseSoundModeUpdate parses an unsolicited SoundModes update.
func ParseSoundModeUpdate(body []byte) (structures.SoundModes, error) {
	return structures.ParseSoundModes(body)
}

// ParseBatteryLevelUpdate parses an unsolicited dual-battery level
// update (left level, right level).
func ParseBatteryLevelUpdate(body []byte) (structures.DualBattery, error) {
	if len(body) < 2 {
		return structures.DualBattery{}, errShort("BatteryLevelUpdate", 2, len(body))
	}
	clamp := func(v byte) uint8 {
		if v > 5 {
			return 5
		}
		return v
	}
	return structures.DualBattery{
		Left:  structures.SingleBattery{Level: clamp(body[0])},
		Right: structures.SingleBattery{Level: clamp(body[1])},
	}, nil
}

// ParseBatteryChargingUpdate parses an unsolicited dual-battery charging
// update (left charging, right charging).
func ParseBatteryChargingUpdate(body []byte) (charging struct{ Left, Right bool }, err error) {
	if len(body) < 2 {
		return charging, errShort("BatteryChargingUpdate", 2, len(body))
	}
	charging.Left = body[0] != 0
	charging.Right = body[1] != 0
	return charging, nil
}

// SetButtonConfiguration builds the outbound packet for a single button
// binding write: position, action, enabled.
func SetButtonConfiguration(position structures.ButtonPosition, binding structures.ButtonBinding) wire.Packet {
	enabled := byte(0)
	if binding.IsEnabled {
		enabled = 1
	}
	return wire.Packet{
		Command: CommandSetButtonConfiguration,
		Body:    []byte{byte(position), byte(binding.Action), enabled},
	}
}

// ResetButtonConfiguration builds the outbound packet that resets all
// button bindings to their firmware default.
func ResetButtonConfiguration() wire.Packet {
	return wire.Packet{Command: CommandResetButtonConfiguration}
}
