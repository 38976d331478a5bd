// Package typetwo assembles the device family for newer models exposing
// the richer SoundModesTypeTwo surface (A3936-style and beyond), with a
// plain dual-channel equalizer and the common button/battery/misc
// capabilities. Its state-update wire layout shares the
// interpretation-decision caveat recorded for devices/classic in
// DESIGN.md.
package typetwo

import (
	"github.com/soundcore-go/soundcore-core/devices/layout"
	"github.com/soundcore-go/soundcore-core/modules"
	"github.com/soundcore-go/soundcore-core/structures"
)

// BandHz is this family's 8-band equalizer center frequencies.
var BandHz = []uint32{100, 200, 400, 800, 1600, 3200, 6400, 12800}

// State is the in-memory state for a type-two-family device.
type State struct {
	SoundModes      structures.SoundModesTypeTwo
	Equalizer       structures.EqualizerConfiguration
	Battery         structures.DualBattery
	Buttons         structures.ButtonConfiguration
	ResetButtonsPending bool
	LimitHighVolume structures.LimitHighVolume
	Firmware        structures.DualFirmwareVersion
	Serial          structures.SerialNumber
	Tws             structures.TwsStatus
}

// ParseStateUpdate parses the full state-update packet body this family
// emits in response to RequestState.
func ParseStateUpdate(body []byte) (State, error) {
	c := layout.NewCursor(body)
	var s State

	sm, err := c.Take(6, "SoundModesTypeTwo")
	if err != nil {
		return s, err
	}
	if s.SoundModes, err = structures.ParseSoundModesTypeTwo(sm); err != nil {
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
	if presetID == structures.CustomPresetID {
		s.Equalizer = structures.NewCustomEqualizerConfiguration(adjustments)
	} else {
		s.Equalizer = structures.NewPresetEqualizerConfiguration(presetID, adjustments)
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

	limitByte, err := c.Byte("LimitHighVolume")
	if err != nil {
		return s, err
	}
	s.LimitHighVolume = limitByte != 0

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

// Presets is the stock preset table exposed to the UI.
var Presets = modules.PresetTable{
	Names: map[uint16]string{
		0x0000: "Soundcore Signature",
	},
	Adjustments: map[uint16][][]int8{
		0x0000: {make([]int8, len(BandHz)), make([]int8, len(BandHz))},
	},
}

// BuildModules registers every capability this family exposes onto mc.
func BuildModules(mc *modules.ModuleCollection[State]) {
	modules.AddSoundModesTypeTwo(mc,
		func(s State) structures.SoundModesTypeTwo { return s.SoundModes },
		func(s *State, v structures.SoundModesTypeTwo) { s.SoundModes = v },
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
	modules.AddLimitHighVolume(mc,
		func(s State) structures.LimitHighVolume { return s.LimitHighVolume },
		func(s *State, v structures.LimitHighVolume) { s.LimitHighVolume = v },
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
