package modules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/structures"
	"github.com/soundcore-go/soundcore-core/wire"
)

type dualBatteryOnlyState struct {
	Battery structures.DualBattery
}

func newDualBatteryCollection() *ModuleCollection[dualBatteryOnlyState] {
	mc := NewModuleCollection[dualBatteryOnlyState]()
	AddDualBattery(mc,
		func(s dualBatteryOnlyState) structures.DualBattery { return s.Battery },
		func(s *dualBatteryOnlyState, v structures.DualBattery) { s.Battery = v },
	)
	return mc
}

func TestDualBatteryIsReadOnly(t *testing.T) {
	mc := newDualBatteryCollection()
	current := dualBatteryOnlyState{}

	_, _, err := mc.ApplySettingValues(current, map[settings.Id]settings.Value{
		settings.IdBatteryLevelLeft: settings.I32Value(3),
	})
	require.Error(t, err)
}

func TestDualBatteryLevelUpdatePacketAppliesToState(t *testing.T) {
	mc := newDualBatteryCollection()
	state := dualBatteryOnlyState{Battery: structures.DualBattery{
		Left:  structures.SingleBattery{Level: 1, IsCharging: false},
		Right: structures.SingleBattery{Level: 1, IsCharging: false},
	}}

	p := wire.Packet{Command: packets.CommandBatteryLevelUpdate, Body: []byte{4, 5}}
	changed, err := mc.HandlePacket(&state, p)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, uint8(4), state.Battery.Left.Level)
	require.Equal(t, uint8(5), state.Battery.Right.Level)
}

func TestDualBatteryChargingUpdatePacketAppliesToState(t *testing.T) {
	mc := newDualBatteryCollection()
	state := dualBatteryOnlyState{}

	p := wire.Packet{Command: packets.CommandBatteryChargingUpdate, Body: []byte{1, 0}}
	changed, err := mc.HandlePacket(&state, p)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, state.Battery.Left.IsCharging)
	require.False(t, state.Battery.Right.IsCharging)
}

func TestDualBatteryIgnoresUnrelatedCommand(t *testing.T) {
	mc := newDualBatteryCollection()
	state := dualBatteryOnlyState{}

	changed, err := mc.HandlePacket(&state, wire.Packet{Command: [2]byte{0x09, 0x09}})
	require.NoError(t, err)
	require.False(t, changed)
}
