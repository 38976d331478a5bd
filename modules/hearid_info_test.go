package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

type hearIDInfoOnlyState struct {
	Age    structures.AgeRange
	Gender structures.Gender
}

func newHearIDDemographicsCollection() *ModuleCollection[hearIDInfoOnlyState] {
	mc := NewModuleCollection[hearIDInfoOnlyState]()
	AddHearIDDemographics(mc,
		func(s hearIDInfoOnlyState) structures.AgeRange { return s.Age },
		func(s hearIDInfoOnlyState) structures.Gender { return s.Gender },
	)
	return mc
}

func TestHearIDDemographicsReadOutAgeAndGender(t *testing.T) {
	mc := newHearIDDemographicsCollection()
	state := hearIDInfoOnlyState{Age: 42, Gender: structures.GenderFemale}

	age, err := mc.Setting(state, settings.IdAgeRange)
	require.NoError(t, err)
	require.Equal(t, "42", age.InfoValue)

	gender, err := mc.Setting(state, settings.IdGender)
	require.NoError(t, err)
	require.Equal(t, "Female", gender.InfoValue)
}

func TestHearIDDemographicsAreReadOnly(t *testing.T) {
	mc := newHearIDDemographicsCollection()
	state := hearIDInfoOnlyState{}

	_, _, err := mc.ApplySettingValues(state, map[settings.Id]settings.Value{
		settings.IdGender: settings.StringValue("Male"),
	})
	require.Error(t, err)
}
