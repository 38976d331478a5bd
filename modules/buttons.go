package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

var buttonActionOptions = []string{
	"VolumeUp", "VolumeDown", "PreviousSong", "NextSong",
	"AmbientSoundMode", "VoiceAssistant", "PlayPause", "GameMode", "None",
}

var buttonPositionIds = map[structures.ButtonPosition]settings.Id{
	structures.ButtonLeftSinglePress:  settings.IdLeftSinglePress,
	structures.ButtonLeftDoublePress:  settings.IdLeftDoublePress,
	structures.ButtonLeftLongPress:    settings.IdLeftLongPress,
	structures.ButtonRightSinglePress: settings.IdRightSinglePress,
	structures.ButtonRightDoublePress: settings.IdRightDoublePress,
	structures.ButtonRightLongPress:   settings.IdRightLongPress,
}

func buttonActionName(a structures.ButtonAction) string {
	if int(a) < len(buttonActionOptions) {
		return buttonActionOptions[a]
	}
	return "None"
}

func buttonActionFromName(name string) structures.ButtonAction {
	for i, n := range buttonActionOptions {
		if n == name {
			return structures.ButtonAction(i)
		}
	}
	return structures.ButtonActionNone
}

// AddButtonConfiguration registers a Select setting per configured
// button position plus a ResetButtonsToDefault action. Resetting is
// modeled as a pending flag on State (§9 "Reset button configuration
// pending"): ApplySettingValues sets it, and the StateModifier that
// observes it set emits ResetButtonConfiguration instead of diffing
// individual positions, since the firmware does not support a partial
// reset.
func AddButtonConfiguration[State any](
	mc *ModuleCollection[State],
	get func(State) structures.ButtonConfiguration,
	set func(*State, structures.ButtonConfiguration),
	getResetPending func(State) bool,
	setResetPending func(*State, bool),
) {
	mc.AddSettingHandler(&buttonHandler[State]{get: get, set: set, setResetPending: setResetPending})
	mc.AddStateModifier(&buttonModifier[State]{
		get: get, set: set,
		getResetPending: getResetPending, setResetPending: setResetPending,
	})
}

type buttonHandler[State any] struct {
	get             func(State) structures.ButtonConfiguration
	set             func(*State, structures.ButtonConfiguration)
	setResetPending func(*State, bool)
}

func (h *buttonHandler[State]) Category() settings.Category { return settings.CategoryButtons }

func (h *buttonHandler[State]) Ids() []settings.Id {
	ids := make([]settings.Id, 0, len(buttonPositionIds)+1)
	for _, id := range buttonPositionIds {
		ids = append(ids, id)
	}
	return append(ids, settings.IdResetButtonsToDefault)
}

func (h *buttonHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	if id == settings.IdResetButtonsToDefault {
		return settings.Action(), nil
	}
	cfg := h.get(state)
	pos, ok := positionForId(id)
	if !ok {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	binding, ok := cfg.Bindings[pos]
	if !ok {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	return settings.Select(buttonActionOptions, buttonActionOptions, buttonActionName(binding.Action)), nil
}

func (h *buttonHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	if id == settings.IdResetButtonsToDefault {
		h.setResetPending(state, true)
		return nil
	}
	pos, ok := positionForId(id)
	if !ok {
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	name, err := value.AsEnumVariant()
	if err != nil {
		return err
	}
	cfg := h.get(*state)
	bindings := make(map[structures.ButtonPosition]structures.ButtonBinding, len(cfg.Bindings))
	for p, b := range cfg.Bindings {
		bindings[p] = b
	}
	binding := bindings[pos]
	binding.Action = buttonActionFromName(name)
	bindings[pos] = binding
	h.set(state, structures.ButtonConfiguration{Bindings: bindings})
	return nil
}

func positionForId(id settings.Id) (structures.ButtonPosition, bool) {
	for pos, posID := range buttonPositionIds {
		if posID == id {
			return pos, true
		}
	}
	return 0, false
}

type buttonModifier[State any] struct {
	get             func(State) structures.ButtonConfiguration
	set             func(*State, structures.ButtonConfiguration)
	getResetPending func(State) bool
	setResetPending func(*State, bool)
}

func (m *buttonModifier[State]) Diff(current, target State) ([]wire.Packet, error) {
	if m.getResetPending(target) {
		return []wire.Packet{packets.ResetButtonConfiguration()}, nil
	}

	from := m.get(current)
	to := m.get(target)

	var out []wire.Packet
	for pos, toBinding := range to.Bindings {
		if fromBinding, ok := from.Bindings[pos]; !ok || fromBinding != toBinding {
			out = append(out, packets.SetButtonConfiguration(pos, toBinding))
		}
	}
	return out, nil
}

func (m *buttonModifier[State]) Commit(state *State, target State) {
	if m.getResetPending(target) {
		m.setResetPending(state, false)
		return
	}
	m.set(state, m.get(target))
}
