package errorkinds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuredErrorsFormatTheirField(t *testing.T) {
	require.Equal(t, "action timed out: SetSoundModes", (&ActionTimedOut{Action: "SetSoundModes"}).Error())
	require.Equal(t, "feature not supported: HearIDEnabled", (&FeatureNotSupported{Feature: "HearIDEnabled"}).Error())
	require.Equal(t, "missing data: state", (&MissingData{Name: "state"}).Error())
	require.Equal(t, "parse error: short body", (&ParseError{Message: "short body"}).Error())
	require.Equal(t, "value error: wrong kind", (&ValueError{Message: "wrong kind"}).Error())
}

func TestValueErrorUnwrapsToSentinel(t *testing.T) {
	err := &ValueError{Message: "wrong kind"}
	require.ErrorIs(t, err, ErrValueError)
	require.True(t, errors.Is(err, ErrValueError))
}
