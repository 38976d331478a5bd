package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// AddEqualizerWithHearID registers the hear-ID-aware equalizer
// capability (A3926-family): the usual EqualizerPreset/VolumeAdjustments
// pair, plus a read-only HearIDEnabled setting, wired so that writing
// the equalizer always fuses in the current hear-ID profile with its
// enable bit forced off, per §4.5.
func AddEqualizerWithHearID[State any](
	mc *ModuleCollection[State],
	getEq func(State) structures.EqualizerConfiguration,
	setEq func(*State, structures.EqualizerConfiguration),
	getHearID func(State) structures.CustomHearId,
	bandHz []uint32,
	presets PresetTable,
) {
	mc.AddSettingHandler(&equalizerHandler[State]{get: getEq, set: setEq, bandHz: bandHz, presets: presets})
	mc.AddSettingHandler(&hearIDEnabledHandler[State]{get: getHearID})
	mc.AddStateModifier(&hearIDEqualizerModifier[State]{getEq: getEq, setEq: setEq, getHearID: getHearID})
}

type hearIDEnabledHandler[State any] struct {
	get func(State) structures.CustomHearId
}

func (h *hearIDEnabledHandler[State]) Category() settings.Category { return settings.CategoryEqualizer }

func (h *hearIDEnabledHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdHearIDEnabled}
}

func (h *hearIDEnabledHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	if id != settings.IdHearIDEnabled {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	return settings.Toggle(h.get(state).IsEnabled), nil
}

func (h *hearIDEnabledHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: "HearIDEnabled is read-only; disable it by writing an equalizer value"}
}

type hearIDEqualizerModifier[State any] struct {
	getEq      func(State) structures.EqualizerConfiguration
	setEq      func(*State, structures.EqualizerConfiguration)
	getHearID  func(State) structures.CustomHearId
}

func (m *hearIDEqualizerModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from := m.getEq(current)
	to := m.getEq(target)
	if from.PresetID == to.PresetID && equalAdjustments(from.VolumeAdjustments, to.VolumeAdjustments) {
		return nil, nil
	}
	return []wire.Packet{packets.SetEqualizerWithHearID(to, m.getHearID(current))}, nil
}

func (m *hearIDEqualizerModifier[State]) Commit(state *State, target State) {
	m.setEq(state, m.getEq(target))
}
