package structures

// AmbientSoundMode selects the top-level ambient behaviour of the
// headphones.
type AmbientSoundMode uint8

// The ambient sound mode ordinals, matching the wire encoding used by
// classic (non type-two) Soundcore firmware.
const (
	AmbientSoundModeNoiseCanceling AmbientSoundMode = 0
	AmbientSoundModeTransparency   AmbientSoundMode = 1
	AmbientSoundModeNormal         AmbientSoundMode = 2
)

// AmbientSoundModeFromOrdinal returns the AmbientSoundMode for the given wire byte,
// falling back to AmbientSoundModeNormal for any unknown ordinal so that
// new firmware values never break parsing (§4.1 enum lenience).
func AmbientSoundModeFromOrdinal(b byte) AmbientSoundMode {
	switch AmbientSoundMode(b) {
	case AmbientSoundModeNoiseCanceling, AmbientSoundModeTransparency, AmbientSoundModeNormal:
		return AmbientSoundMode(b)
	default:
		return AmbientSoundModeNormal
	}
}

// Byte returns the wire ordinal for this ambient sound mode.
func (a AmbientSoundMode) Byte() byte { return byte(a) }

func (a AmbientSoundMode) String() string {
	switch a {
	case AmbientSoundModeNoiseCanceling:
		return "NoiseCanceling"
	case AmbientSoundModeTransparency:
		return "Transparency"
	default:
		return "Normal"
	}
}

// NoiseCancelingMode selects the flavour of active noise cancellation.
type NoiseCancelingMode uint8

const (
	NoiseCancelingModeTransport NoiseCancelingMode = 0
	NoiseCancelingModeOutdoor  NoiseCancelingMode = 1
	NoiseCancelingModeIndoor   NoiseCancelingMode = 2
	NoiseCancelingModeCustom   NoiseCancelingMode = 3
)

// NoiseCancelingModeFromOrdinal parses a wire byte leniently, defaulting
// to NoiseCancelingModeTransport for unknown ordinals.
func NoiseCancelingModeFromOrdinal(b byte) NoiseCancelingMode {
	switch NoiseCancelingMode(b) {
	case NoiseCancelingModeTransport, NoiseCancelingModeOutdoor, NoiseCancelingModeIndoor, NoiseCancelingModeCustom:
		return NoiseCancelingMode(b)
	default:
		return NoiseCancelingModeTransport
	}
}

func (n NoiseCancelingMode) Byte() byte { return byte(n) }

func (n NoiseCancelingMode) String() string {
	switch n {
	case NoiseCancelingModeOutdoor:
		return "Outdoor"
	case NoiseCancelingModeIndoor:
		return "Indoor"
	case NoiseCancelingModeCustom:
		return "Custom"
	default:
		return "Transport"
	}
}

// TransparencyMode selects how ambient sound bleeds through in
// transparency mode.
type TransparencyMode uint8

const (
	TransparencyModeFullyTransparent TransparencyMode = 0
	TransparencyModeVocalMode        TransparencyMode = 1
)

// TransparencyModeFromOrdinal parses a wire byte leniently.
func TransparencyModeFromOrdinal(b byte) TransparencyMode {
	switch TransparencyMode(b) {
	case TransparencyModeFullyTransparent, TransparencyModeVocalMode:
		return TransparencyMode(b)
	default:
		return TransparencyModeFullyTransparent
	}
}

func (t TransparencyMode) Byte() byte { return byte(t) }

func (t TransparencyMode) String() string {
	if t == TransparencyModeVocalMode {
		return "VocalMode"
	}
	return "FullyTransparent"
}

// CustomNoiseCanceling is a manual ANC strength in 0..=10.
type CustomNoiseCanceling uint8

// NewCustomNoiseCanceling clamps value into the valid 0..=10 range.
func NewCustomNoiseCanceling(value uint8) CustomNoiseCanceling {
	if value > 10 {
		value = 10
	}
	return CustomNoiseCanceling(value)
}

func (c CustomNoiseCanceling) Byte() byte { return byte(c) }

// SoundModes is the classic sound-mode quadruple exposed by most
// Soundcore models.
type SoundModes struct {
	Ambient              AmbientSoundMode
	NoiseCancelingMode    NoiseCancelingMode
	TransparencyMode      TransparencyMode
	CustomNoiseCanceling CustomNoiseCanceling
}

// Bytes returns the 4-byte wire body for a SetSoundModes packet.
func (s SoundModes) Bytes() []byte {
	return []byte{
		s.Ambient.Byte(),
		s.NoiseCancelingMode.Byte(),
		s.TransparencyMode.Byte(),
		s.CustomNoiseCanceling.Byte(),
	}
}

// ParseSoundModes parses a 4-byte SoundModes body leniently; unknown
// ordinals fall back to their type's default.
func ParseSoundModes(body []byte) (SoundModes, error) {
	if len(body) < 4 {
		return SoundModes{}, errShortBody("SoundModes", 4, len(body))
	}
	return SoundModes{
		Ambient:              AmbientSoundModeFromOrdinal(body[0]),
		NoiseCancelingMode:    NoiseCancelingModeFromOrdinal(body[1]),
		TransparencyMode:      TransparencyModeFromOrdinal(body[2]),
		CustomNoiseCanceling: NewCustomNoiseCanceling(body[3]),
	}, nil
}

// ManualNoiseCanceling is the type-two equivalent of CustomNoiseCanceling,
// used by SoundModesTypeTwo-bearing models.
type ManualNoiseCanceling uint8

// AdaptiveNoiseCanceling selects an adaptive ANC strength bucket.
type AdaptiveNoiseCanceling uint8

// WindNoiseSuppression toggles wind-noise suppression.
type WindNoiseSuppression bool

// NoiseCancelingAdaptiveSensitivityLevel tunes how aggressively adaptive
// ANC reacts to ambient noise.
type NoiseCancelingAdaptiveSensitivityLevel uint8

// SoundModesTypeTwo is the richer sound-mode surface used by newer
// models (A3936-family and beyond).
type SoundModesTypeTwo struct {
	Ambient                                AmbientSoundMode
	TransparencyMode                       TransparencyMode
	ManualNoiseCanceling                   ManualNoiseCanceling
	AdaptiveNoiseCanceling                 AdaptiveNoiseCanceling
	WindNoiseSuppression                   WindNoiseSuppression
	NoiseCancelingAdaptiveSensitivityLevel NoiseCancelingAdaptiveSensitivityLevel
}

// Bytes returns the wire body for a type-two SetSoundModes packet.
func (s SoundModesTypeTwo) Bytes() []byte {
	wind := byte(0)
	if s.WindNoiseSuppression {
		wind = 1
	}
	return []byte{
		s.Ambient.Byte(),
		s.TransparencyMode.Byte(),
		byte(s.ManualNoiseCanceling),
		byte(s.AdaptiveNoiseCanceling),
		wind,
		byte(s.NoiseCancelingAdaptiveSensitivityLevel),
	}
}

// ParseSoundModesTypeTwo parses a 6-byte type-two SoundModes body leniently.
func ParseSoundModesTypeTwo(body []byte) (SoundModesTypeTwo, error) {
	if len(body) < 6 {
		return SoundModesTypeTwo{}, errShortBody("SoundModesTypeTwo", 6, len(body))
	}
	return SoundModesTypeTwo{
		Ambient:                                AmbientSoundModeFromOrdinal(body[0]),
		TransparencyMode:                       TransparencyModeFromOrdinal(body[1]),
		ManualNoiseCanceling:                   ManualNoiseCanceling(body[2]),
		AdaptiveNoiseCanceling:                 AdaptiveNoiseCanceling(body[3]),
		WindNoiseSuppression:                   body[4] != 0,
		NoiseCancelingAdaptiveSensitivityLevel: NoiseCancelingAdaptiveSensitivityLevel(body[5]),
	}, nil
}

// AmbientSoundModeCycle is the bit set over {normal, transparency,
// noise_canceling} chosen by the device's cycle button.
type AmbientSoundModeCycle struct {
	Normal         bool
	Transparency   bool
	NoiseCanceling bool
}

// Byte packs the cycle into a single bitfield byte (bit0=normal,
// bit1=transparency, bit2=noise_canceling).
func (c AmbientSoundModeCycle) Byte() byte {
	var b byte
	if c.Normal {
		b |= 1 << 0
	}
	if c.Transparency {
		b |= 1 << 1
	}
	if c.NoiseCanceling {
		b |= 1 << 2
	}
	return b
}

// AmbientSoundModeCycleFromByte unpacks a cycle bitfield byte.
func AmbientSoundModeCycleFromByte(b byte) AmbientSoundModeCycle {
	return AmbientSoundModeCycle{
		Normal:         b&(1<<0) != 0,
		Transparency:   b&(1<<1) != 0,
		NoiseCanceling: b&(1<<2) != 0,
	}
}
