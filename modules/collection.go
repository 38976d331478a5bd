// Package modules implements the capability system (§4.2, §4.4): a
// ModuleCollection composes SettingHandlers (get/set a setting against
// in-memory state), PacketHandlers (mutate state from an inbound
// packet), and StateModifiers (diff a target against the current state
// and emit the outbound packets needed to converge them) into the
// single pipeline a Device drives.
package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/wire"
)

// SettingHandler projects a slice of State fields onto the settings
// surface: it knows which Ids it owns, how to read them out of State,
// and how to validate and apply a Value back into State. It performs no
// I/O; PacketHandler and StateModifier are what move bytes.
type SettingHandler[State any] interface {
	Category() settings.Category
	Ids() []settings.Id
	Get(state State, id settings.Id) (settings.Setting, error)
	Set(state *State, id settings.Id, value settings.Value) error
}

// PacketHandler mutates State from an inbound packet whose command it
// claims. It reports whether the packet actually changed State, which a
// Device uses to decide whether to notify watchers.
type PacketHandler[State any] interface {
	Commands() []wire.Command
	Handle(state *State, p wire.Packet) (changed bool, err error)
}

// StateModifier compares a target State against the current State and
// emits the outbound packets needed to converge the device towards
// target. Commit is called once those packets have been acknowledged,
// and folds the delta into the live State.
type StateModifier[State any] interface {
	Diff(current, target State) ([]wire.Packet, error)
	Commit(state *State, target State)
}

// ModuleCollection is the full set of capabilities a device model
// registers; Device drives settings_in_category, setting, packet
// dispatch, and set_setting_values entirely through it.
type ModuleCollection[State any] struct {
	settingHandlers []SettingHandler[State]
	byID            map[settings.Id]SettingHandler[State]
	byCategory      map[settings.Category][]settings.Id

	packetHandlers []PacketHandler[State]
	byCommand      map[wire.Command][]PacketHandler[State]

	modifiers []StateModifier[State]
}

// NewModuleCollection returns an empty collection ready for AddXxx calls.
func NewModuleCollection[State any]() *ModuleCollection[State] {
	return &ModuleCollection[State]{
		byID:       make(map[settings.Id]SettingHandler[State]),
		byCategory: make(map[settings.Category][]settings.Id),
		byCommand:  make(map[wire.Command][]PacketHandler[State]),
	}
}

// AddSettingHandler registers h for every Id it claims. A later call
// claiming the same Id overrides the earlier registration, which lets a
// model-specific module override a generic default.
func (m *ModuleCollection[State]) AddSettingHandler(h SettingHandler[State]) {
	m.settingHandlers = append(m.settingHandlers, h)
	for _, id := range h.Ids() {
		if _, exists := m.byID[id]; !exists {
			m.byCategory[h.Category()] = append(m.byCategory[h.Category()], id)
		}
		m.byID[id] = h
	}
}

// AddPacketHandler registers h against every command it claims.
// Multiple handlers may claim the same command; all run, in
// registration order.
func (m *ModuleCollection[State]) AddPacketHandler(h PacketHandler[State]) {
	m.packetHandlers = append(m.packetHandlers, h)
	for _, cmd := range h.Commands() {
		m.byCommand[cmd] = append(m.byCommand[cmd], h)
	}
}

// AddStateModifier registers m2 to run, in registration order, whenever
// set_setting_values diffs a target state against the current one.
func (m *ModuleCollection[State]) AddStateModifier(m2 StateModifier[State]) {
	m.modifiers = append(m.modifiers, m2)
}

// Categories lists the categories this collection exposes settings
// under, in registration order with duplicates removed.
func (m *ModuleCollection[State]) Categories() []settings.Category {
	seen := make(map[settings.Category]bool, len(m.byCategory))
	var out []settings.Category
	for _, h := range m.settingHandlers {
		cat := h.Category()
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// SettingsInCategory lists the Ids registered under category, in the
// order their handlers were added.
func (m *ModuleCollection[State]) SettingsInCategory(category settings.Category) []settings.Id {
	return append([]settings.Id(nil), m.byCategory[category]...)
}

// Setting projects a single Id out of state, or FeatureNotSupported if
// no handler in this collection claims id.
func (m *ModuleCollection[State]) Setting(state State, id settings.Id) (settings.Setting, error) {
	h, ok := m.byID[id]
	if !ok {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	return h.Get(state, id)
}

// HandlePacket dispatches an inbound packet to every PacketHandler that
// claims its command, folding their "changed" results with OR. A
// command no handler claims is not an error: unrecognised unsolicited
// packets are dropped silently, per the lenient-parsing invariant.
func (m *ModuleCollection[State]) HandlePacket(state *State, p wire.Packet) (changed bool, err error) {
	for _, h := range m.byCommand[p.Command] {
		c, err := h.Handle(state, p)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// BuildTarget clones current and applies every (id, value) pair in
// values to the clone via the owning SettingHandler (§4.4's
// settings_manager.set loop). It performs no I/O and does not mutate
// current itself.
func (m *ModuleCollection[State]) BuildTarget(
	current State,
	values map[settings.Id]settings.Value,
) (target State, err error) {
	target = current
	for id, value := range values {
		h, ok := m.byID[id]
		if !ok {
			return current, &errorkinds.FeatureNotSupported{Feature: string(id)}
		}
		if err := h.Set(&target, id, value); err != nil {
			return current, err
		}
	}
	return target, nil
}

// Modifiers returns the registered StateModifiers in registration
// order, the order a Device must drive them in (§4.4, §8's "order of
// activation equals order of set_setting_values' internal iteration,
// which is stable across runs").
func (m *ModuleCollection[State]) Modifiers() []StateModifier[State] {
	return m.modifiers
}

// ApplySettingValues is a preview helper that runs the full pipeline
// (BuildTarget then every modifier's Diff against the target) without
// sending anything or committing: useful for tests that want to assert
// on the outbound packets a batch of values would produce. A live
// Device does not use this directly — it drives BuildTarget and
// Modifiers one modifier at a time so that a modifier's packets can be
// sent and acknowledged, and its Commit folded in, before the next
// modifier's Diff runs against the now-current state (§4.4's partial-
// failure policy: modifiers that already succeeded are not rolled
// back when a later one fails).
func (m *ModuleCollection[State]) ApplySettingValues(
	current State,
	values map[settings.Id]settings.Value,
) (target State, packets []wire.Packet, err error) {
	target, err = m.BuildTarget(current, values)
	if err != nil {
		return current, nil, err
	}

	for _, mod := range m.modifiers {
		p, err := mod.Diff(current, target)
		if err != nil {
			return current, nil, err
		}
		packets = append(packets, p...)
	}

	return target, packets, nil
}

// Commit folds target into state for every registered StateModifier.
// Prefer calling a single modifier's Commit directly once its own
// packets have been acknowledged; this bulk form remains for callers
// (and tests) that already hold a fully-converged target.
func (m *ModuleCollection[State]) Commit(state *State, target State) {
	for _, mod := range m.modifiers {
		mod.Commit(state, target)
	}
}
