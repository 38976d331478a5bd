package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// AddSingleBattery registers the read-only BatteryLevel/IsCharging
// settings for a model with one shared battery, plus the PacketHandler
// that applies unsolicited battery updates. Single-battery models
// report both fields in one update packet (§4.5); there is no
// StateModifier since the device, not the host, owns this state.
func AddSingleBattery[State any](
	mc *ModuleCollection[State],
	get func(State) structures.SingleBattery,
	set func(*State, structures.SingleBattery),
) {
	mc.AddSettingHandler(&singleBatteryHandler[State]{get: get})
	mc.AddPacketHandler(&singleBatteryPacketHandler[State]{set: set})
}

type singleBatteryHandler[State any] struct {
	get func(State) structures.SingleBattery
}

func (h *singleBatteryHandler[State]) Category() settings.Category { return settings.CategoryBattery }

func (h *singleBatteryHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdBatteryLevel, settings.IdIsCharging}
}

func (h *singleBatteryHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	b := h.get(state)
	switch id {
	case settings.IdBatteryLevel:
		return settings.I32Range(0, 5, 1, int32(b.Level)), nil
	case settings.IdIsCharging:
		return settings.Toggle(b.IsCharging), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *singleBatteryHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: string(id) + " is read-only"}
}

type singleBatteryPacketHandler[State any] struct {
	set func(*State, structures.SingleBattery)
}

func (h *singleBatteryPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandBatteryLevelUpdate, packets.CommandBatteryChargingUpdate}
}

func (h *singleBatteryPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	b, err := structures.ParseSingleBattery(p.Body)
	if err != nil {
		return false, err
	}
	h.set(state, b)
	return true, nil
}

// AddDualBattery registers the read-only per-ear battery settings for a
// TWS pair, plus the PacketHandler that applies unsolicited level and
// charging updates, which arrive as two separate commands (§4.5).
func AddDualBattery[State any](
	mc *ModuleCollection[State],
	get func(State) structures.DualBattery,
	set func(*State, structures.DualBattery),
) {
	mc.AddSettingHandler(&dualBatteryHandler[State]{get: get})
	mc.AddPacketHandler(&dualBatteryPacketHandler[State]{get: get, set: set})
}

type dualBatteryHandler[State any] struct {
	get func(State) structures.DualBattery
}

func (h *dualBatteryHandler[State]) Category() settings.Category { return settings.CategoryBattery }

func (h *dualBatteryHandler[State]) Ids() []settings.Id {
	return []settings.Id{
		settings.IdBatteryLevelLeft,
		settings.IdBatteryLevelRight,
		settings.IdIsChargingLeft,
		settings.IdIsChargingRight,
	}
}

func (h *dualBatteryHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	b := h.get(state)
	switch id {
	case settings.IdBatteryLevelLeft:
		return settings.I32Range(0, 5, 1, int32(b.Left.Level)), nil
	case settings.IdBatteryLevelRight:
		return settings.I32Range(0, 5, 1, int32(b.Right.Level)), nil
	case settings.IdIsChargingLeft:
		return settings.Toggle(b.Left.IsCharging), nil
	case settings.IdIsChargingRight:
		return settings.Toggle(b.Right.IsCharging), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *dualBatteryHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: string(id) + " is read-only"}
}

type dualBatteryPacketHandler[State any] struct {
	get func(State) structures.DualBattery
	set func(*State, structures.DualBattery)
}

func (h *dualBatteryPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandBatteryLevelUpdate, packets.CommandBatteryChargingUpdate}
}

func (h *dualBatteryPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	switch p.Command {
	case packets.CommandBatteryLevelUpdate:
		levels, err := packets.ParseBatteryLevelUpdate(p.Body)
		if err != nil {
			return false, err
		}
		current := h.get(*state)
		current.Left.Level = levels.Left.Level
		current.Right.Level = levels.Right.Level
		h.set(state, current)
		return true, nil
	case packets.CommandBatteryChargingUpdate:
		charging, err := packets.ParseBatteryChargingUpdate(p.Body)
		if err != nil {
			return false, err
		}
		current := h.get(*state)
		current.Left.IsCharging = charging.Left
		current.Right.IsCharging = charging.Right
		h.set(state, current)
		return true, nil
	default:
		return false, nil
	}
}
