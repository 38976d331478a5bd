// Package packets holds the command-code catalogue and the
// model-agnostic inbound parsers / outbound builders that are shared
// across device families. Model-specific state-update packets live
// alongside their owning device package in devices/.
package packets

import "github.com/soundcore-go/soundcore-core/wire"

// The command codes used across the Soundcore packet family. Outbound
// and inbound packets that form a request/response pair share the same
// code, per §6.
var (
	CommandStateUpdate              = wire.Command{0x01, 0x01}
	CommandSerialAndFirmware        = wire.Command{0x05, 0x01}
	CommandSetSoundModes            = wire.Command{0x06, 0x81}
	CommandSoundModeUpdate          = wire.Command{0x06, 0x01}
	CommandSetEqualizer             = wire.Command{0x02, 0x81}
	CommandSetEqualizerWithDRC      = wire.Command{0x02, 0x83}
	CommandSetEqualizerWithHearID   = wire.Command{0x03, 0x87}
	CommandSetButtonConfiguration   = wire.Command{0x04, 0x81}
	CommandResetButtonConfiguration = wire.Command{0x04, 0x82}
	CommandSetAllButtonConfigurations = wire.Command{0x04, 0x84}
	CommandBatteryLevelUpdate       = wire.Command{0x01, 0x03}
	CommandBatteryChargingUpdate    = wire.Command{0x01, 0x04}
	CommandFirmwareSerialUpdate     = wire.Command{0x01, 0x05}
	CommandTwsStatusUpdate          = wire.Command{0x01, 0x02}

	CommandSetTouchTone             = wire.Command{0x08, 0x81}
	CommandSetAutoPowerOff          = wire.Command{0x08, 0x82}
	CommandSetLimitHighVolume       = wire.Command{0x08, 0x83}
	CommandSetAmbientSoundModeCycle = wire.Command{0x06, 0x83}
)

// Registry is a lookup from Command to a human-readable name, used for
// packet tracing and for rejecting commands no registered handler
// recognises.
type Registry struct {
	names map[wire.Command]string
}

// NewRegistry returns a Registry pre-populated with the catalogue above.
func NewRegistry() *Registry {
	r := &Registry{names: map[wire.Command]string{
		CommandStateUpdate:                "StateUpdate",
		CommandSerialAndFirmware:          "SerialAndFirmware",
		CommandSetSoundModes:              "SetSoundModes",
		CommandSoundModeUpdate:            "SoundModeUpdate",
		CommandSetEqualizer:               "SetEqualizer",
		CommandSetEqualizerWithDRC:        "SetEqualizerWithDRC",
		CommandSetEqualizerWithHearID:     "SetEqualizerWithHearID",
		CommandSetButtonConfiguration:     "SetButtonConfiguration",
		CommandResetButtonConfiguration:   "ResetButtonConfiguration",
		CommandSetAllButtonConfigurations: "SetAllButtonConfigurations",
		CommandBatteryLevelUpdate:         "BatteryLevelUpdate",
		CommandBatteryChargingUpdate:      "BatteryChargingUpdate",
		CommandFirmwareSerialUpdate:       "FirmwareSerialUpdate",
		CommandTwsStatusUpdate:            "TwsStatusUpdate",
		CommandSetTouchTone:               "SetTouchTone",
		CommandSetAutoPowerOff:            "SetAutoPowerOff",
		CommandSetLimitHighVolume:         "SetLimitHighVolume",
		CommandSetAmbientSoundModeCycle:   "SetAmbientSoundModeCycle",
	}}
	return r
}

// Name returns the human-readable name for a command, or "unknown".
func (r *Registry) Name(cmd wire.Command) string {
	if name, ok := r.names[cmd]; ok {
		return name
	}
	return "unknown"
}

// Register adds or overrides a name, used by per-model assemblies that
// introduce model-specific commands.
func (r *Registry) Register(cmd wire.Command, name string) {
	r.names[cmd] = name
}
