package structures

import "fmt"

// FirmwareVersion is a "MAJOR.MINOR" firmware version string, as reported
// by a single firmware-carrying half of the device.
type FirmwareVersion struct {
	Major uint8
	Minor uint8
}

func (f FirmwareVersion) String() string {
	return fmt.Sprintf("%02d.%02d", f.Major, f.Minor)
}

// DualFirmwareVersion carries independent firmware versions for the left
// and right halves of a TWS pair.
type DualFirmwareVersion struct {
	Left  FirmwareVersion
	Right FirmwareVersion
}

// SerialNumber is the device's reported serial number string.
type SerialNumber string

// TwsStatus reports whether the device is currently operating as a true
// wireless stereo pair with both halves connected.
type TwsStatus struct {
	IsConnected bool
}

// ButtonAction enumerates the actions a physical button can be bound to.
type ButtonAction uint8

// The button action ordinals.
const (
	ButtonActionVolumeUp ButtonAction = iota
	ButtonActionVolumeDown
	ButtonActionPreviousSong
	ButtonActionNextSong
	ButtonActionAmbientSoundMode
	ButtonActionVoiceAssistant
	ButtonActionPlayPause
	ButtonActionGameMode
	ButtonActionNone
)

// ButtonActionFromOrdinal parses a wire byte leniently, defaulting to
// ButtonActionNone for unknown ordinals.
func ButtonActionFromOrdinal(b byte) ButtonAction {
	if ButtonAction(b) <= ButtonActionGameMode {
		return ButtonAction(b)
	}
	return ButtonActionNone
}

// ButtonPosition identifies a physical button on the device.
type ButtonPosition uint8

// The physical button positions.
const (
	ButtonLeftSinglePress ButtonPosition = iota
	ButtonLeftDoublePress
	ButtonLeftLongPress
	ButtonRightSinglePress
	ButtonRightDoublePress
	ButtonRightLongPress
)

// ButtonBinding is a single button's configured action, with an optional
// distinct action for when the TWS pair is disconnected.
type ButtonBinding struct {
	Action                ButtonAction
	IsEnabled             bool
	HasTwsDisconnectedAction bool
	TwsDisconnectedAction ButtonAction
}

// ButtonConfiguration is the full set of physical-button bindings for a
// device.
type ButtonConfiguration struct {
	Bindings map[ButtonPosition]ButtonBinding
}

// NewButtonConfiguration builds an empty configuration over the given
// positions, each defaulted to ButtonActionNone and enabled.
func NewButtonConfiguration(positions ...ButtonPosition) ButtonConfiguration {
	bindings := make(map[ButtonPosition]ButtonBinding, len(positions))
	for _, p := range positions {
		bindings[p] = ButtonBinding{Action: ButtonActionNone, IsEnabled: true}
	}
	return ButtonConfiguration{Bindings: bindings}
}

// AutoPowerOff is the auto-power-off timer state: whether it is enabled,
// and which index into the model's (non-uniform, see DESIGN.md) duration
// table is selected.
type AutoPowerOff struct {
	IsEnabled bool
	Index     uint8
}

// TouchTone toggles the confirmation tone played on touch-control
// actions.
type TouchTone bool

// LimitHighVolume toggles the high-volume safety limiter.
type LimitHighVolume bool
