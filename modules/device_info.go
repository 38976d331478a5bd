package modules

import (
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

// AddSerialAndDualFirmwareVersion registers the read-only
// FirmwareVersionLeft/Right and SerialNumber Information settings, and
// the PacketHandler that applies the combined unsolicited report some
// models emit instead of bundling these fields into the state-update
// packet (§4.5).
func AddSerialAndDualFirmwareVersion[State any](
	mc *ModuleCollection[State],
	getFw func(State) structures.DualFirmwareVersion,
	setFw func(*State, structures.DualFirmwareVersion),
	getSerial func(State) structures.SerialNumber,
	setSerial func(*State, structures.SerialNumber),
) {
	mc.AddSettingHandler(&deviceInfoHandler[State]{getFw: getFw, getSerial: getSerial})
	mc.AddPacketHandler(&deviceInfoPacketHandler[State]{setFw: setFw, setSerial: setSerial})
}

type deviceInfoHandler[State any] struct {
	getFw     func(State) structures.DualFirmwareVersion
	getSerial func(State) structures.SerialNumber
}

func (h *deviceInfoHandler[State]) Category() settings.Category { return settings.CategoryDeviceInfo }

func (h *deviceInfoHandler[State]) Ids() []settings.Id {
	return []settings.Id{settings.IdFirmwareVersionLeft, settings.IdFirmwareVersionRight, settings.IdSerialNumber}
}

func (h *deviceInfoHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	switch id {
	case settings.IdFirmwareVersionLeft:
		v := h.getFw(state).Left.String()
		return settings.Information(v, v), nil
	case settings.IdFirmwareVersionRight:
		v := h.getFw(state).Right.String()
		return settings.Information(v, v), nil
	case settings.IdSerialNumber:
		v := string(h.getSerial(state))
		return settings.Information(v, v), nil
	default:
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
}

func (h *deviceInfoHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: string(id) + " is read-only"}
}

type deviceInfoPacketHandler[State any] struct {
	setFw     func(*State, structures.DualFirmwareVersion)
	setSerial func(*State, structures.SerialNumber)
}

func (h *deviceInfoPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandFirmwareSerialUpdate}
}

func (h *deviceInfoPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	fw, serial, err := packets.ParseFirmwareSerialUpdate(p.Body)
	if err != nil {
		return false, err
	}
	h.setFw(state, fw)
	h.setSerial(state, serial)
	return true, nil
}

// AddTwsStatus registers the read-only TwsStatus setting (a Toggle whose
// Set always fails) and the PacketHandler that applies unsolicited connection-status
// reports.
func AddTwsStatus[State any](
	mc *ModuleCollection[State],
	get func(State) structures.TwsStatus,
	set func(*State, structures.TwsStatus),
) {
	mc.AddSettingHandler(&twsStatusHandler[State]{get: get})
	mc.AddPacketHandler(&twsStatusPacketHandler[State]{get: get, set: set})
}

type twsStatusHandler[State any] struct {
	get func(State) structures.TwsStatus
}

func (h *twsStatusHandler[State]) Category() settings.Category { return settings.CategoryDeviceInfo }

func (h *twsStatusHandler[State]) Ids() []settings.Id { return []settings.Id{settings.IdTwsStatus} }

func (h *twsStatusHandler[State]) Get(state State, id settings.Id) (settings.Setting, error) {
	if id != settings.IdTwsStatus {
		return settings.Setting{}, &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	return settings.Toggle(h.get(state).IsConnected), nil
}

func (h *twsStatusHandler[State]) Set(state *State, id settings.Id, value settings.Value) error {
	return &errorkinds.FeatureNotSupported{Feature: "TwsStatus is read-only"}
}

type twsStatusPacketHandler[State any] struct {
	get func(State) structures.TwsStatus
	set func(*State, structures.TwsStatus)
}

func (h *twsStatusPacketHandler[State]) Commands() []wire.Command {
	return []wire.Command{packets.CommandTwsStatusUpdate}
}

func (h *twsStatusPacketHandler[State]) Handle(state *State, p wire.Packet) (bool, error) {
	s, err := packets.ParseTwsStatusUpdate(p.Body)
	if err != nil {
		return false, err
	}
	changed := s != h.get(*state)
	h.set(state, s)
	return changed, nil
}
