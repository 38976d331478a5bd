package structures

// Gender and AgeRange describe the hearing-test demographic inputs used
// to seed a Hear ID profile. They are read-only Information settings on
// the models that expose them.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
)

func (g Gender) String() string {
	if g == GenderFemale {
		return "Female"
	}
	return "Male"
}

// AgeRange is the age bracket selected during the on-device hearing test,
// stored as the raw age in years (0 meaning unset).
type AgeRange uint8

// HearIDType distinguishes the hearing-test flow that produced a profile.
type HearIDType uint8

// BasicHearId is a per-ear EQ personalisation profile without a custom
// per-band override, as used by the hear-ID-aware equalizer models.
type BasicHearId struct {
	IsEnabled         bool
	Time              int64
	HearIDType        HearIDType
	VolumeAdjustments [][]int8 // one row per ear
}

// CustomHearId extends BasicHearId with the per-band custom volume
// adjustments a user can additionally layer on top of the hearing-test
// result, and the device-assigned hear-ID preset profile ID.
type CustomHearId struct {
	IsEnabled                bool
	Time                     int64
	HearIDType               HearIDType
	HearIDPresetProfileID    uint16
	VolumeAdjustments        [][]int8
	CustomVolumeAdjustments  [][]int8
	HasCustomVolumeAdjustments bool
}

// EnableByte returns the wire encoding of the enable flag, used when fusing an
// equalizer write with an existing hear-ID block whose enable bit is
// forced off so the chosen EQ wins (§4.5 "With custom hear-ID").
func (c CustomHearId) EnableByte() byte {
	if c.IsEnabled {
		return 1
	}
	return 0
}

// WithDisabled returns a copy of c with IsEnabled forced to false,
// leaving every other field untouched.
func (c CustomHearId) WithDisabled() CustomHearId {
	c.IsEnabled = false
	return c
}
