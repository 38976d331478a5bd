package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmbientSoundModeFromOrdinalDefaultsUnknownToNormal(t *testing.T) {
	require.Equal(t, AmbientSoundModeNoiseCanceling, AmbientSoundModeFromOrdinal(0))
	require.Equal(t, AmbientSoundModeNormal, AmbientSoundModeFromOrdinal(99))
}

func TestNoiseCancelingModeFromOrdinalDefaultsUnknownToTransport(t *testing.T) {
	require.Equal(t, NoiseCancelingModeIndoor, NoiseCancelingModeFromOrdinal(2))
	require.Equal(t, NoiseCancelingModeTransport, NoiseCancelingModeFromOrdinal(99))
}

func TestTransparencyModeFromOrdinalDefaultsUnknownToFullyTransparent(t *testing.T) {
	require.Equal(t, TransparencyModeVocalMode, TransparencyModeFromOrdinal(1))
	require.Equal(t, TransparencyModeFullyTransparent, TransparencyModeFromOrdinal(99))
}

func TestNewCustomNoiseCancelingClampsAboveTen(t *testing.T) {
	require.Equal(t, CustomNoiseCanceling(10), NewCustomNoiseCanceling(200))
	require.Equal(t, CustomNoiseCanceling(4), NewCustomNoiseCanceling(4))
}

func TestParseSoundModesIsLenientOnAllZeroBody(t *testing.T) {
	sm, err := ParseSoundModes(make([]byte, 4))
	require.NoError(t, err)
	require.Equal(t, AmbientSoundModeNoiseCanceling, sm.Ambient)
}

func TestParseSoundModesRejectsShortBody(t *testing.T) {
	_, err := ParseSoundModes(make([]byte, 3))
	require.Error(t, err)
}

func TestSoundModesBytesRoundTripsThroughParse(t *testing.T) {
	sm := SoundModes{
		Ambient:              AmbientSoundModeTransparency,
		NoiseCancelingMode:   NoiseCancelingModeIndoor,
		TransparencyMode:     TransparencyModeVocalMode,
		CustomNoiseCanceling: NewCustomNoiseCanceling(6),
	}
	parsed, err := ParseSoundModes(sm.Bytes())
	require.NoError(t, err)
	require.Equal(t, sm, parsed)
}

func TestParseSoundModesTypeTwoRejectsShortBody(t *testing.T) {
	_, err := ParseSoundModesTypeTwo(make([]byte, 5))
	require.Error(t, err)
}

func TestSoundModesTypeTwoBytesRoundTripsThroughParse(t *testing.T) {
	sm := SoundModesTypeTwo{
		Ambient:                                AmbientSoundModeNormal,
		TransparencyMode:                       TransparencyModeVocalMode,
		ManualNoiseCanceling:                   ManualNoiseCanceling(5),
		AdaptiveNoiseCanceling:                 AdaptiveNoiseCanceling(7),
		WindNoiseSuppression:                   true,
		NoiseCancelingAdaptiveSensitivityLevel: NoiseCancelingAdaptiveSensitivityLevel(3),
	}
	parsed, err := ParseSoundModesTypeTwo(sm.Bytes())
	require.NoError(t, err)
	require.Equal(t, sm, parsed)
}

func TestAmbientSoundModeCycleByteRoundTrips(t *testing.T) {
	cycle := AmbientSoundModeCycle{Normal: true, NoiseCanceling: true}
	require.Equal(t, cycle, AmbientSoundModeCycleFromByte(cycle.Byte()))
}
