package hearid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

func TestParseStateUpdateAcceptsZeroFilledBody(t *testing.T) {
	s, err := ParseStateUpdate(make([]byte, 50))
	require.NoError(t, err)
	require.Len(t, s.HearID.VolumeAdjustments, 2)
	require.False(t, s.HearID.IsEnabled)
	require.Equal(t, structures.GenderMale, s.Gender)
}

func TestParseStateUpdateRejectsShortBody(t *testing.T) {
	_, err := ParseStateUpdate(make([]byte, 10))
	require.Error(t, err)
}

func TestParseStateUpdateCarriesTrailingSerial(t *testing.T) {
	body := make([]byte, 50)
	body = append(body, 'S', 'N', '7')
	s, err := ParseStateUpdate(body)
	require.NoError(t, err)
	require.Equal(t, "SN7", string(s.Serial))
}

func TestNewModuleCollectionExposesHearIDEnabledSetting(t *testing.T) {
	mc := NewModuleCollection()
	require.Contains(t, mc.SettingsInCategory(settings.CategoryEqualizer), settings.IdHearIDEnabled)
	require.Contains(t, mc.SettingsInCategory(settings.CategoryEqualizer), settings.IdAgeRange)
}
