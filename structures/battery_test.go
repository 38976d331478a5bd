package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleBatteryClampsAboveFive(t *testing.T) {
	b, err := ParseSingleBattery([]byte{9, 1})
	require.NoError(t, err)
	require.Equal(t, uint8(5), b.Level)
	require.True(t, b.IsCharging)
}

func TestParseSingleBatteryRejectsShortBody(t *testing.T) {
	_, err := ParseSingleBattery([]byte{1})
	require.Error(t, err)
}

func TestParseDualBatteryClampsEachSideIndependently(t *testing.T) {
	bat, err := ParseDualBattery([]byte{9, 2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, uint8(5), bat.Left.Level)
	require.Equal(t, uint8(2), bat.Right.Level)
	require.True(t, bat.Left.IsCharging)
	require.False(t, bat.Right.IsCharging)
}

func TestParseDualBatteryRejectsShortBody(t *testing.T) {
	_, err := ParseDualBattery([]byte{1, 2, 3})
	require.Error(t, err)
}
