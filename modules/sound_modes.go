package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

var ambientOptions = []string{"NoiseCanceling", "Transparency", "Normal"}
var noiseCancelingOptions = []string{"Transport", "Outdoor", "Indoor", "Custom"}
var transparencyOptions = []string{"FullyTransparent", "VocalMode"}

// AddSoundModes registers the classic SoundModes capability: four
// settings (AmbientSoundMode, NoiseCancelingMode, TransparencyMode,
// CustomNoiseCanceling), a PacketHandler for unsolicited updates, and a
// StateModifier implementing the firmware's noise-canceling-mode quirk
// (§4.5): changing NoiseCancelingMode while the device is not currently
// in AmbientSoundModeNoiseCanceling requires forcing it into that mode
// first, then the real change, then restoring the target ambient mode,
// for exactly three outbound packets.
func AddSoundModes[State any](
	mc *ModuleCollection[State],
	get func(State) structures.SoundModes,
	set func(*State, structures.SoundModes),
) {
	mc.AddSettingHandler(&soundModesHandler[State]{get: get, set: set})
	mc.AddPacketHandler(&soundModesPacketHandler[State]{set: set})
	mc.AddStateModifier(&soundModesModifier[State]{get: get, set: set})
}

type soundModesHandler[State any] struct {
	get func(State) structures.SoundModes
	set func(*State, structures.SoundModes)
}

func (h *soundModesHandler[State]) Category() settings.Category { return settings.CategorySoundModes }

func (h *soundModesHandler[State]) Ids() []settings.Id {
	return []settings.Id{
		settings.IdAmbientSoundMode,
		settings.IdNoiseCancelingMode,
		settings.IdTransparencyMode,
		settings.IdCustomNoiseCanceling,
	}
}

func (h *soundModesHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	m := h.get(state)
	switch id {
	case settings.IdAmbientSoundMode:
		return settings.Select(ambientOptions, ambientOptions, m.Ambient.String()), nil
	case settings.IdNoiseCancelingMode:
		return settings.Select(noiseCancelingOptions, noiseCancelingOptions, m.NoiseCancelingMode.String()), nil
	case settings.IdTransparencyMode:
		return settings.Select(transparencyOptions, transparencyOptions, m.TransparencyMode.String()), nil
	case settings.IdCustomNoiseCanceling:
		return settings.I32Range(0, 10, 1, int32(m.CustomNoiseCanceling)), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *soundModesHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	m := h.get(*state)
	switch id {
	case settings.IdAmbientSoundMode:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		m.Ambient = ambientFromName(name)
	case settings.IdNoiseCancelingMode:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		m.NoiseCancelingMode = noiseCancelingFromName(name)
	case settings.IdTransparencyMode:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		m.TransparencyMode = transparencyFromName(name)
	case settings.IdCustomNoiseCanceling:
		v, err := value.AsI32()
		if err != nil {
			return err
		}
		m.CustomNoiseCanceling = structures.NewCustomNoiseCanceling(uint8(v))
	default:
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	h.set(state, m)
	return nil
}

func ambientFromName(name string) structures.AmbientSoundMode {
	switch name {
	case "Transparency":
		return structures.AmbientSoundModeTransparency
	case "Normal":
		return structures.AmbientSoundModeNormal
	default:
		return structures.AmbientSoundModeNoiseCanceling
	}
}

func noiseCancelingFromName(name string) structures.NoiseCancelingMode {
	switch name {
	case "Outdoor":
		return structures.NoiseCancelingModeOutdoor
	case "Indoor":
		return structures.NoiseCancelingModeIndoor
	case "Custom":
		return structures.NoiseCancelingModeCustom
	default:
		return structures.NoiseCancelingModeTransport
	}
}

func transparencyFromName(name string) structures.TransparencyMode {
	if name == "VocalMode" {
		return structures.TransparencyModeVocalMode
	}
	return structures.TransparencyModeFullyTransparent
}

type soundModesPacketHandler[State any] struct {
	set func(*State, structures.SoundModes)
}

func (h *soundModesPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandSoundModeUpdate}
}

func (h *soundModesPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	m, err := packets.ParseSoundModeUpdate(p.Body)
	if err != nil {
		return false, err
	}
	h.set(state, m)
	return true, nil
}

type soundModesModifier[State any] struct {
	get func(State) structures.SoundModes
	set func(*State, structures.SoundModes)
}

func (m *soundModesModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from := m.get(current)
	to := m.get(target)
	if from == to {
		return nil, nil
	}

	if to.NoiseCancelingMode != from.NoiseCancelingMode && from.Ambient != structures.AmbientSoundModeNoiseCanceling {
		forceANC := structures.SoundModes{
			Ambient:              structures.AmbientSoundModeNoiseCanceling,
			NoiseCancelingMode:   from.NoiseCancelingMode,
			TransparencyMode:     from.TransparencyMode,
			CustomNoiseCanceling: from.CustomNoiseCanceling,
		}
		applyChange := structures.SoundModes{
			Ambient:              structures.AmbientSoundModeNoiseCanceling,
			NoiseCancelingMode:   to.NoiseCancelingMode,
			TransparencyMode:     to.TransparencyMode,
			CustomNoiseCanceling: to.CustomNoiseCanceling,
		}
		restore := to
		return []wire.Packet{
			packets.SetSoundModes(forceANC),
			packets.SetSoundModes(applyChange),
			packets.SetSoundModes(restore),
		}, nil
	}

	return []wire.Packet{packets.SetSoundModes(to)}, nil
}

func (m *soundModesModifier[State]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}
