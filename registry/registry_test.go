package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/devicemodel"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/transport/demo"
	"github.com/soundcore-go/soundcore-core/wire"
)

func zeroBodyStatePacket(n int) wire.Packet {
	return wire.Packet{Command: [2]byte{0x01, 0x01}, Body: make([]byte, n)}
}

func TestConnectorForDispatchesByFamily(t *testing.T) {
	cases := map[devicemodel.Model]devicemodel.Family{
		devicemodel.A3028: devicemodel.FamilyClassic,
		devicemodel.A3931: devicemodel.FamilyClassicDRC,
		devicemodel.A3926: devicemodel.FamilyHearID,
		devicemodel.A3936: devicemodel.FamilyTypeTwo,
	}
	for model, family := range cases {
		connector, err := ConnectorFor(model)
		require.NoError(t, err, "model %s (family %s)", model, family)
		require.NotNil(t, connector)
	}
}

func TestConnectorForUnknownModel(t *testing.T) {
	_, err := ConnectorFor(devicemodel.Model("not-a-real-model"))
	require.NoError(t, err, "unmapped models default to FamilyClassic, not an error")
}

func TestScannerAccumulatesAcrossDiscoverCalls(t *testing.T) {
	macA := transport.MacAddress{0x01}
	macB := transport.MacAddress{0x02}
	backend := &fakeDiscoverBackend{descriptors: []transport.ConnectionDescriptor{{Mac: macA, Name: "First"}}}
	scanner := NewScanner(backend)

	found, err := scanner.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)

	backend.descriptors = []transport.ConnectionDescriptor{{Mac: macB, Name: "Second"}}
	found, err = scanner.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 2, "a Scanner remembers peers seen on earlier Discover calls")

	scanner.Forget(macA)
	found, err = scanner.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, macB, found[0].Mac)
}

type fakeDiscoverBackend struct {
	descriptors []transport.ConnectionDescriptor
}

func (b *fakeDiscoverBackend) Devices(ctx context.Context) ([]transport.ConnectionDescriptor, error) {
	return b.descriptors, nil
}

func (b *fakeDiscoverBackend) Connect(ctx context.Context, mac transport.MacAddress, selector transport.UUIDSelector) (transport.Connection, error) {
	panic("not used by this test")
}

func TestConnectDialsResolvedFamily(t *testing.T) {
	backend := &demo.Backend{
		Descriptor:  transport.ConnectionDescriptor{Name: "Demo"},
		StatePacket: zeroBodyStatePacket(49),
	}

	handle, err := Connect(context.Background(), backend, devicemodel.A3028,
		transport.MacAddress{0xAA}, "Demo", nil, nil)
	require.NoError(t, err)
	defer handle.Disconnect()

	require.Equal(t, devicemodel.A3028, handle.Model())
}

func TestConnectAnyReturnsFirstMatchingCandidate(t *testing.T) {
	backend := &demo.Backend{
		Descriptor:  transport.ConnectionDescriptor{Name: "Demo"},
		StatePacket: zeroBodyStatePacket(49),
	}

	candidates := []devicemodel.Model{devicemodel.A3028, devicemodel.A3926, devicemodel.A3936}

	handle, err := ConnectAny(context.Background(), backend, candidates,
		transport.MacAddress{0xAA}, "Demo", nil, nil)
	require.NoError(t, err)
	defer handle.Disconnect()

	require.Contains(t, candidates, handle.Model())
}

func TestConnectAnyNoCandidates(t *testing.T) {
	backend := &demo.Backend{Descriptor: transport.ConnectionDescriptor{Name: "Demo"}}
	_, err := ConnectAny(context.Background(), backend, nil,
		transport.MacAddress{0xAA}, "Demo", nil, nil)
	require.Error(t, err)
}
