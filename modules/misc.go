package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// AddTouchTone registers the touch-control confirmation tone toggle.
func AddTouchTone[State any](
	mc *ModuleCollection[State],
	get func(State) structures.TouchTone,
	set func(*State, structures.TouchTone),
) {
	mc.AddSettingHandler(&toggleHandler[State, structures.TouchTone]{
		id: settings.IdTouchTone, category: settings.CategoryMisc, get: get, set: set,
	})
	mc.AddStateModifier(&toggleModifier[State, structures.TouchTone]{
		get: get, set: set, build: packets.SetTouchTone,
	})
}

// AddLimitHighVolume registers the high-volume safety limiter toggle.
func AddLimitHighVolume[State any](
	mc *ModuleCollection[State],
	get func(State) structures.LimitHighVolume,
	set func(*State, structures.LimitHighVolume),
) {
	mc.AddSettingHandler(&toggleHandler[State, structures.LimitHighVolume]{
		id: settings.IdLimitHighVolume, category: settings.CategoryMisc, get: get, set: set,
	})
	mc.AddStateModifier(&toggleModifier[State, structures.LimitHighVolume]{
		get: get, set: set, build: packets.SetLimitHighVolume,
	})
}

// boolLike is any named bool type, e.g. TouchTone or LimitHighVolume.
type boolLike interface{ ~bool }

type toggleHandler[State any, V boolLike] struct {
	id       settings.Id
	category settings.Category
	get      func(State) V
	set      func(*State, V)
}

func (h *toggleHandler[State, V]) Category() settings.Category { return h.category }
func (h *toggleHandler[State, V]) Ids() []settings.Id          { return []settings.Id{h.id} }

func (h *toggleHandler[State, V]) Get(state State, id settings.Id) (settings.Setting, error) {
	if id != h.id {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	return settings.Toggle(bool(h.get(state))), nil
}

func (h *toggleHandler[State, V]) Set(state *State, id settings.Id, value settings.Value) error {
	if id != h.id {
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	b, err := value.AsBool()
	if err != nil {
		return err
	}
	h.set(state, V(b))
	return nil
}

type toggleModifier[State any, V boolLike] struct {
	get   func(State) V
	set   func(*State, V)
	build func(V) wire.Packet
}

func (m *toggleModifier[State, V]) Diff(current, target State) ([]wire.Packet, error) {
	from, to := m.get(current), m.get(target)
	if from == to {
		return nil, nil
	}
	return []wire.Packet{m.build(to)}, nil
}

func (m *toggleModifier[State, V]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}

// AddAutoPowerOff registers the auto-power-off enabled toggle plus its
// duration-index select. The model's duration-table names are supplied
// by the caller since the index's meaning is per-model (§9, DESIGN.md).
func AddAutoPowerOff[State any](
	mc *ModuleCollection[State],
	get func(State) structures.AutoPowerOff,
	set func(*State, structures.AutoPowerOff),
	durationNames []string,
) {
	mc.AddSettingHandler(&autoPowerOffHandler[State]{get: get, set: set, durations: durationNames})
	mc.AddStateModifier(&autoPowerOffModifier[State]{get: get, set: set})
}

type autoPowerOffHandler[State any] struct {
	get       func(State) structures.AutoPowerOff
	set       func(*State, structures.AutoPowerOff)
	durations []string
}

func (h *autoPowerOffHandler[State]) Category() settings.Category { return settings.CategoryMisc }

func (h *autoPowerOffHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdAutoPowerOff, settings.IdAutoPowerOffDuration}
}

func (h *autoPowerOffHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	v := h.get(state)
	switch id {
	case settings.IdAutoPowerOff:
		return settings.Toggle(v.IsEnabled), nil
	case settings.IdAutoPowerOffDuration:
		name := ""
		if int(v.Index) < len(h.durations) {
			name = h.durations[v.Index]
		}
		return settings.Select(h.durations, h.durations, name), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *autoPowerOffHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	v := h.get(*state)
	switch id {
	case settings.IdAutoPowerOff:
		b, err := value.AsBool()
		if err != nil {
			return err
		}
		v.IsEnabled = b
	case settings.IdAutoPowerOffDuration:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		for i, n := range h.durations {
			if n == name {
				v.Index = uint8(i)
				break
			}
		}
	default:
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	h.set(state, v)
	return nil
}

type autoPowerOffModifier[State any] struct {
	get func(State) structures.AutoPowerOff
	set func(*State, structures.AutoPowerOff)
}

func (m *autoPowerOffModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from, to := m.get(current), m.get(target)
	if from == to {
		return nil, nil
	}
	return []wire.Packet{packets.SetAutoPowerOff(to)}, nil
}

func (m *autoPowerOffModifier[State]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}

// AddAmbientSoundModeCycle registers the ambient-sound-mode cycle
// setting: which of {normal, transparency, noise canceling} the
// physical button steps through.
func AddAmbientSoundModeCycle[State any](
	mc *ModuleCollection[State],
	get func(State) structures.AmbientSoundModeCycle,
	set func(*State, structures.AmbientSoundModeCycle),
) {
	mc.AddSettingHandler(&ambientCycleHandler[State]{get: get, set: set})
	mc.AddStateModifier(&ambientCycleModifier[State]{get: get, set: set})
}

var ambientCycleMembers = []string{"Normal", "Transparency", "NoiseCanceling"}

type ambientCycleHandler[State any] struct {
	get func(State) structures.AmbientSoundModeCycle
	set func(*State, structures.AmbientSoundModeCycle)
}

func (h *ambientCycleHandler[State]) Category() settings.Category { return settings.CategorySoundModes }

func (h *ambientCycleHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdAmbientSoundModeCycle}
}

func (h *ambientCycleHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	if id != settings.IdAmbientSoundModeCycle {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	c := h.get(state)
	return settings.MultiSelect(ambientCycleMembers, ambientCycleMembers, cycleToValues(c)), nil
}

func (h *ambientCycleHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	if id != settings.IdAmbientSoundModeCycle {
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	if value.Kind != settings.KindStringVec {
		return &errorkinds.ValueError{Message: "expected StringVec"}
	}
	c := valuesToCycle(value.StringVec)
	h.set(state, c)
	return nil
}

func valuesToCycle(members []string) structures.AmbientSoundModeCycle {
	var c structures.AmbientSoundModeCycle
	for _, m := range members {
		switch m {
		case "Normal":
			c.Normal = true
		case "Transparency":
			c.Transparency = true
		case "NoiseCanceling":
			c.NoiseCanceling = true
		}
	}
	return c
}

func cycleToValues(c structures.AmbientSoundModeCycle) []string {
	var out []string
	if c.Normal {
		out = append(out, "Normal")
	}
	if c.Transparency {
		out = append(out, "Transparency")
	}
	if c.NoiseCanceling {
		out = append(out, "NoiseCanceling")
	}
	return out
}

type ambientCycleModifier[State any] struct {
	get func(State) structures.AmbientSoundModeCycle
	set func(*State, structures.AmbientSoundModeCycle)
}

func (m *ambientCycleModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from, to := m.get(current), m.get(target)
	if from == to {
		return nil, nil
	}
	return []wire.Packet{packets.SetAmbientSoundModeCycle(to)}, nil
}

func (m *ambientCycleModifier[State]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}
