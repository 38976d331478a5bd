package modules

import (
	"strconv"

	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
)

// AddHearIDDemographics registers the read-only AgeRange/Gender
// Information settings captured by the on-device hearing test that
// seeds a hear-ID profile.
func AddHearIDDemographics[State any](
	mc *ModuleCollection[State],
	getAge func(State) structures.AgeRange,
	getGender func(State) structures.Gender,
) {
	mc.AddSettingHandler(&hearIDDemographicsHandler[State]{getAge: getAge, getGender: getGender})
}

type hearIDDemographicsHandler[State any] struct {
	getAge    func(State) structures.AgeRange
	getGender func(State) structures.Gender
}

func (h *hearIDDemographicsHandler[State]) Category() settings.Category {
	return settings.CategoryEqualizer
}

func (h *hearIDDemographicsHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdAgeRange, settings.IdGender}
}

func (h *hearIDDemographicsHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	switch id {
	case settings.IdAgeRange:
		v := strconv.Itoa(int(h.getAge(state)))
		return settings.Information(v, v), nil
	case settings.IdGender:
		v := h.getGender(state).String()
		return settings.Information(v, v), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *hearIDDemographicsHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: string(id) + " is read-only"}
}
