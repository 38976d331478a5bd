package modules

import (
	"sort"

	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// PresetTable maps a model's stock preset IDs to their display name and
// stock per-channel volume adjustments.
type PresetTable struct {
	Names       map[uint16]string
	Adjustments map[uint16][][]int8
}

// AddEqualizer registers the plain equalizer capability: an
// EqualizerPreset select, a VolumeAdjustments custom curve, and a
// StateModifier that writes CommandSetEqualizer on change.
func AddEqualizer[State any](
	mc *ModuleCollection[State],
	get func(State) structures.EqualizerConfiguration,
	set func(*State, structures.EqualizerConfiguration),
	bandHz []uint32,
	presets PresetTable,
) {
	addEqualizer(mc, get, set, bandHz, presets, packets.SetEqualizer)
}

// AddEqualizerWithDRC registers the dynamic-range-compressed equalizer
// capability used by models whose equalizer write carries both the raw
// and DRC-compressed curve (§4.5).
func AddEqualizerWithDRC[State any](
	mc *ModuleCollection[State],
	get func(State) structures.EqualizerConfiguration,
	set func(*State, structures.EqualizerConfiguration),
	bandHz []uint32,
	presets PresetTable,
) {
	addEqualizer(mc, get, set, bandHz, presets, packets.SetEqualizerWithDRC)
}

func addEqualizer[State any](
	mc *ModuleCollection[State],
	get func(State) structures.EqualizerConfiguration,
	set func(*State, structures.EqualizerConfiguration),
	bandHz []uint32,
	presets PresetTable,
	build func(structures.EqualizerConfiguration) wire.Packet,
) {
	h := &equalizerHandler[State]{get: get, set: set, bandHz: bandHz, presets: presets}
	mc.AddSettingHandler(h)
	mc.AddStateModifier(&equalizerModifier[State]{get: get, set: set, build: build})
}

type equalizerHandler[State any] struct {
	get     func(State) structures.EqualizerConfiguration
	set     func(*State, structures.EqualizerConfiguration)
	bandHz  []uint32
	presets PresetTable
}

func (h *equalizerHandler[State]) Category() settings.Category { return settings.CategoryEqualizer }

func (h *equalizerHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdEqualizerPreset, settings.IdVolumeAdjustments}
}

func (h *equalizerHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	cfg := h.get(state)
	switch id {
	case settings.IdEqualizerPreset:
		options := presetOptionNames(h.presets)
		current := h.presets.Names[cfg.PresetID]
		if cfg.IsCustom() {
			current = "Custom"
		}
		return settings.Select(options, options, current), nil
	case settings.IdVolumeAdjustments:
		return settings.Equalizer(h.bandHz, int16(structures.MinVolume), int16(structures.MaxVolume), 1, flattenEqualizer(cfg)), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *equalizerHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	cfg := h.get(*state)
	switch id {
	case settings.IdEqualizerPreset:
		name, err := value.AsEnumVariant()
		if err != nil {
			return err
		}
		presetID, ok := presetIDForName(h.presets, name)
		if !ok {
			return &errorkinds.ValueError{Message: "unknown equalizer preset: " + name}
		}
		cfg = structures.NewPresetEqualizerConfiguration(presetID, h.presets.Adjustments[presetID])
	case settings.IdVolumeAdjustments:
		flat, err := value.AsI16Vec()
		if err != nil {
			return err
		}
		reshaped := reshapeEqualizer(flat, cfg.Channels(), cfg.Bands())
		cfg = structures.NewCustomEqualizerConfiguration(reshaped)
	default:
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	h.set(state, cfg)
	return nil
}

type equalizerModifier[State any] struct {
	get   func(State) structures.EqualizerConfiguration
	set   func(*State, structures.EqualizerConfiguration)
	build func(structures.EqualizerConfiguration) wire.Packet
}

func (m *equalizerModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	from := m.get(current)
	to := m.get(target)
	if from.PresetID == to.PresetID && equalAdjustments(from.VolumeAdjustments, to.VolumeAdjustments) {
		return nil, nil
	}
	return []wire.Packet{m.build(to)}, nil
}

func (m *equalizerModifier[State]) Commit(state *State, target State) {
	m.set(state, m.get(target))
}

func presetOptionNames(p PresetTable) []string {
	ids := make([]uint16, 0, len(p.Names))
	for id := range p.Names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	names := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		names = append(names, p.Names[id])
	}
	return append(names, "Custom")
}

func presetIDForName(p PresetTable, name string) (uint16, bool) {
	for id, n := range p.Names {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

func flattenEqualizer(cfg structures.EqualizerConfiguration) []int16 {
	flat := make([]int16, 0, cfg.Channels()*cfg.Bands())
	for _, channel := range cfg.VolumeAdjustments {
		for _, v := range channel {
			flat = append(flat, int16(v))
		}
	}
	return flat
}

func reshapeEqualizer(flat []int16, channels, bands int) [][]int8 {
	out := make([][]int8, channels)
	for c := 0; c < channels; c++ {
		row := make([]int8, bands)
		for b := 0; b < bands; b++ {
			idx := c*bands + b
			if idx < len(flat) {
				v := flat[idx]
				if v < int16(structures.MinVolume) {
					v = int16(structures.MinVolume)
				} else if v > int16(structures.MaxVolume) {
					v = int16(structures.MaxVolume)
				}
				row[b] = int8(v)
			}
		}
		out[c] = row
	}
	return out
}

func equalAdjustments(a, b [][]int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
