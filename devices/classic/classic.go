// Package classic assembles the device family shared by
// classic-SoundModes models (A3028-style): a plain two-channel equalizer, one
// noise-canceling quirk, dual battery, six-button bindings, and the
// common misc toggles (§4.7). Its state-update wire layout is an
// interpretation decision recorded in DESIGN.md: the upstream project
// this spec was distilled from parses each field from the same packet,
// but the exact byte offsets are not preserved in the retrieved pack,
// so this assembly defines a self-consistent layout rather than
// guessing at undocumented firmware bytes.
package classic

import (
	"github.com/soundcore-go/soundcore-core/devices/layout"
	"github.com/soundcore-go/soundcore-core/modules"
	"github.com/soundcore-go/soundcore-core/structures"
)

// BandHz is the 8-band classic equalizer's center frequencies.
var BandHz = []uint32{100, 200, 400, 800, 1600, 3200, 6400, 12800}

// State is the in-memory state for a classic-family device.
type State struct {
	SoundModes          structures.SoundModes
	Equalizer           structures.EqualizerConfiguration
	Battery             structures.DualBattery
	Buttons             structures.ButtonConfiguration
	ResetButtonsPending bool
	TouchTone           structures.TouchTone
	AutoPowerOff        structures.AutoPowerOff
	LimitHighVolume     structures.LimitHighVolume
	AmbientCycle        structures.AmbientSoundModeCycle
	Firmware            structures.DualFirmwareVersion
	Serial              structures.SerialNumber
	Tws                 structures.TwsStatus
}

// AutoPowerOffDurations is this family's auto-power-off index table.
var AutoPowerOffDurations = []string{"5m", "10m", "20m", "30m", "60m"}

// ParseStateUpdate parses the full state-update packet body this family
// emits in response to RequestState.
func ParseStateUpdate(body []byte) (State, error) {
	c := layout.NewCursor(body)
	var s State

	sm, err := c.Take(4, "SoundModes")
	if err != nil {
		return s, err
	}
	if s.SoundModes, err = structures.ParseSoundModes(sm); err != nil {
		return s, err
	}

	bat, err := c.Take(4, "Battery")
	if err != nil {
		return s, err
	}
	if s.Battery, err = structures.ParseDualBattery(bat); err != nil {
		return s, err
	}

	presetBytes, err := c.Take(2, "EqualizerPreset")
	if err != nil {
		return s, err
	}
	presetID := uint16(presetBytes[0]) | uint16(presetBytes[1])<<8

	adjustments := make([][]int8, 2)
	for ch := 0; ch < 2; ch++ {
		row, err := c.Take(len(BandHz), "EqualizerBand")
		if err != nil {
			return s, err
		}
		adjustments[ch] = make([]int8, len(row))
		for i, b := range row {
			adjustments[ch][i] = structures.DecodeVolumeByte(b)
		}
	}
	s.Equalizer = structures.NewPresetEqualizerConfiguration(presetID, adjustments)
	if presetID == structures.CustomPresetID {
		s.Equalizer = structures.NewCustomEqualizerConfiguration(adjustments)
	}

	positions := []structures.ButtonPosition{
		structures.ButtonLeftSinglePress, structures.ButtonLeftDoublePress, structures.ButtonLeftLongPress,
		structures.ButtonRightSinglePress, structures.ButtonRightDoublePress, structures.ButtonRightLongPress,
	}
	s.Buttons = structures.NewButtonConfiguration(positions...)
	for _, pos := range positions {
		actionByte, err := c.Byte("ButtonAction")
		if err != nil {
			return s, err
		}
		enabledByte, err := c.Byte("ButtonEnabled")
		if err != nil {
			return s, err
		}
		s.Buttons.Bindings[pos] = structures.ButtonBinding{
			Action:    structures.ButtonActionFromOrdinal(actionByte),
			IsEnabled: enabledByte != 0,
		}
	}

	touchTone, err := c.Byte("TouchTone")
	if err != nil {
		return s, err
	}
	s.TouchTone = touchTone != 0

	apoEnabled, err := c.Byte("AutoPowerOffEnabled")
	if err != nil {
		return s, err
	}
	apoIndex, err := c.Byte("AutoPowerOffIndex")
	if err != nil {
		return s, err
	}
	s.AutoPowerOff = structures.AutoPowerOff{IsEnabled: apoEnabled != 0, Index: apoIndex}

	limitByte, err := c.Byte("LimitHighVolume")
	if err != nil {
		return s, err
	}
	s.LimitHighVolume = limitByte != 0

	cycleByte, err := c.Byte("AmbientSoundModeCycle")
	if err != nil {
		return s, err
	}
	s.AmbientCycle = structures.AmbientSoundModeCycleFromByte(cycleByte)

	fw, err := c.Take(4, "Firmware")
	if err != nil {
		return s, err
	}
	s.Firmware = structures.DualFirmwareVersion{
		Left:  structures.FirmwareVersion{Major: fw[0], Minor: fw[1]},
		Right: structures.FirmwareVersion{Major: fw[2], Minor: fw[3]},
	}

	twsByte, err := c.Byte("TwsStatus")
	if err != nil {
		return s, err
	}
	s.Tws = structures.TwsStatus{IsConnected: twsByte != 0}

	s.Serial = structures.SerialNumber(c.Rest())

	return s, nil
}

// Presets is the stock preset table exposed to the UI; a real device
// registry entry supplies the true per-model curves.
var Presets = modules.PresetTable{
	Names: map[uint16]string{
		0x0000: "Soundcore Signature",
		0x0001: "Bass Booster",
		0x0002: "Treble Booster",
		0x0003: "Vocal Booster",
	},
	Adjustments: map[uint16][][]int8{
		0x0000: {zeroBand(), zeroBand()},
		0x0001: {bassBoost(), bassBoost()},
		0x0002: {trebleBoost(), trebleBoost()},
		0x0003: {vocalBoost(), vocalBoost()},
	},
}

func zeroBand() []int8    { return make([]int8, len(BandHz)) }
func bassBoost() []int8   { return []int8{40, 30, 10, 0, 0, 0, 0, 0} }
func trebleBoost() []int8 { return []int8{0, 0, 0, 0, 0, 10, 30, 40} }
func vocalBoost() []int8  { return []int8{0, 0, 10, 30, 30, 10, 0, 0} }

// BuildModules registers every capability this family exposes onto mc,
// wiring each SettingHandler/PacketHandler/StateModifier against the
// State accessors above.
func BuildModules(mc *modules.ModuleCollection[State]) {
	modules.AddSoundModes(mc,
		func(s State) structures.SoundModes { return s.SoundModes },
		func(s *State, v structures.SoundModes) { s.SoundModes = v },
	)
	modules.AddEqualizer(mc,
		func(s State) structures.EqualizerConfiguration { return s.Equalizer },
		func(s *State, v structures.EqualizerConfiguration) { s.Equalizer = v },
		BandHz, Presets,
	)
	modules.AddDualBattery(mc,
		func(s State) structures.DualBattery { return s.Battery },
		func(s *State, v structures.DualBattery) { s.Battery = v },
	)
	modules.AddButtonConfiguration(mc,
		func(s State) structures.ButtonConfiguration { return s.Buttons },
		func(s *State, v structures.ButtonConfiguration) { s.Buttons = v },
		func(s State) bool { return s.ResetButtonsPending },
		func(s *State, v bool) { s.ResetButtonsPending = v },
	)
	modules.AddTouchTone(mc,
		func(s State) structures.TouchTone { return s.TouchTone },
		func(s *State, v structures.TouchTone) { s.TouchTone = v },
	)
	modules.AddAutoPowerOff(mc,
		func(s State) structures.AutoPowerOff { return s.AutoPowerOff },
		func(s *State, v structures.AutoPowerOff) { s.AutoPowerOff = v },
		AutoPowerOffDurations,
	)
	modules.AddLimitHighVolume(mc,
		func(s State) structures.LimitHighVolume { return s.LimitHighVolume },
		func(s *State, v structures.LimitHighVolume) { s.LimitHighVolume = v },
	)
	modules.AddAmbientSoundModeCycle(mc,
		func(s State) structures.AmbientSoundModeCycle { return s.AmbientCycle },
		func(s *State, v structures.AmbientSoundModeCycle) { s.AmbientCycle = v },
	)
	modules.AddSerialAndDualFirmwareVersion(mc,
		func(s State) structures.DualFirmwareVersion { return s.Firmware },
		func(s *State, v structures.DualFirmwareVersion) { s.Firmware = v },
		func(s State) structures.SerialNumber { return s.Serial },
		func(s *State, v structures.SerialNumber) { s.Serial = v },
	)
	modules.AddTwsStatus(mc,
		func(s State) structures.TwsStatus { return s.Tws },
		func(s *State, v structures.TwsStatus) { s.Tws = v },
	)
}

// NewModuleCollection builds a ready-to-use collection for this family.
func NewModuleCollection() *modules.ModuleCollection[State] {
	mc := modules.NewModuleCollection[State]()
	BuildModules(mc)
	return mc
}
