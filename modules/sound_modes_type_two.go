package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// AddSoundModesTypeTwo registers the richer SoundModesTypeTwo capability
// used by newer models (A3936-family and beyond): ambient mode,
// transparency mode, manual/adaptive ANC strength, wind noise
// suppression, and adaptive sensitivity, none of which share the
// classic SoundModes quirk since type-two firmware accepts the full
// struct in one write.
func AddSoundModesTypeTwo[State any](
	mc *ModuleCollection[State],
	get func(State) structures.SoundModesTypeTwo,
	set func(*State, structures.SoundModesTypeTwo),
) {
	mc.AddSettingHandler(&soundModesTypeTwoHandler[State]{get: get, set: set})
	mc.AddPacketHandler(&soundModesTypeTwoPacketHandler[State]{set: set})
	mc.AddStateModifier(&soundModesTypeTwoModifier[State]{get: get, set: set})
}

type soundModesTypeTwoHandler[State any] struct {
	get func(State) structures.SoundModesTypeTwo
	set func(*State, structures.SoundModesTypeTwo)
}

func (h *soundModesTypeTwoHandler[State]) Category() settings.Category {
	return settings.CategorySoundModes
}

func (h *soundModesTypeTwoHandler[State]) Ids() []settings.Id {
	return []settings.Id{
		settings.IdAmbientSoundMode,
		settings.IdTransparencyMode,
		settings.IdManualNoiseCanceling,
		settings.IdAdaptiveNoiseCanceling,
		settings.IdWindNoiseSuppression,
		settings.IdNoiseCancelingAdaptiveSensitivityLevel,
	}
}

func (h *soundModesTypeTwoHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	m := h.get(state)
	switch id {
	case settings.IdAmbientSoundMode:
		return settings.Select(ambientOptions, ambientOptions, m.Ambient.String()), nil
	case settings.IdTransparencyMode:
		return settings.Select(transparencyOptions, transparencyOptions, m.TransparencyMode.String()), nil
	case settings.IdManualNoiseCanceling:
		return settings.I32Range(0, 10, 1, int32(m.ManualNoiseCanceling)), nil
	case settings.IdAdaptiveNoiseCanceling:
		return settings.I32Range(0, 10, 1, int32(m.AdaptiveNoiseCanceling)), nil
	case settings.IdWindNoiseSuppression:
		return settings.Toggle(bool(m.WindNoiseSuppression)), nil
	case settings.IdNoiseCancelingAdaptiveSensitivityLevel:
		return settings.I32Range(0, 10, 1, int32(m.NoiseCancelingAdaptiveSensitivityLevel)), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *soundModesTypeTwoHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	m := h.get(*state)
	switch id {
	case settings.IdAmbientSoundMode:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		m.Ambient = ambientFromName(name)
	case settings.IdTransparencyMode:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		m.TransparencyMode = transparencyFromName(name)
	case settings.IdManualNoiseCanceling:
		v, err := value.AsI32()
		if err != nil {
			return err
		}
		m.ManualNoiseCanceling = structures.ManualNoiseCanceling(v)
	case settings.IdAdaptiveNoiseCanceling:
		v, err := value.AsI32()
		if err != nil {
			return err
		}
		m.AdaptiveNoiseCanceling = structures.AdaptiveNoiseCanceling(v)
	case settings.IdWindNoiseSuppression:
		v, err := value.AsBool()
		if err != nil {
			return err
		}
		m.WindNoiseSuppression = structures.WindNoiseSuppression(v)
	case settings.IdNoiseCancelingAdaptiveSensitivityLevel:
		v, err := value.AsI32()
		if err != nil {
			return err
		}
		m.NoiseCancelingAdaptiveSensitivityLevel = structures.NoiseCancelingAdaptiveSensitivityLevel(v)
	default:
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	h.set(state, m)
	return nil
}

type soundModesTypeTwoPacketHandler[State any] struct {
	set func(*State, structures.SoundModesTypeTwo)
}

func (h *soundModesTypeTwoPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandSoundModeUpdate}
}

func (h *soundModesTypeTwoPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	m, err := structures.ParseSoundModesTypeTwo(p.Body)
	if err != nil {
		return false, err
	}
	h.set(state, m)
	return true, nil
}

type soundModesTypeTwoModifier[State any] struct {
	get func(State) structures.SoundModesTypeTwo
	set func(*State, structures.SoundModesTypeTwo)
}

func (m *soundModesTypeTwoModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from := m.get(current)
	to := m.get(target)
	if from == to {
		return nil, nil
	}
	return []wire.Packet{packets.SetSoundModesTypeTwo(to)}, nil
}

func (m *soundModesTypeTwoModifier[State]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}
