// Package demo provides an in-memory transport.Backend that fabricates a
// canned state-update packet and acks every outbound write locally. It
// lets the whole module pipeline run end to end without hardware,
// exercising the same StateModifier/PacketHandler code paths a real
// connection would (§9 "Demo mode").
package demo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/wire"
)

// Backend is a demo transport.Backend bound to a single canned device.
type Backend struct {
	Descriptor transport.ConnectionDescriptor
	// StatePacket is returned, framed as an inbound packet, each time
	// the connection observes an outbound RequestState write.
	StatePacket wire.Packet
}

// Devices returns the single canned descriptor.
func (b *Backend) Devices(ctx context.Context) ([]transport.ConnectionDescriptor, error) {
	return []transport.ConnectionDescriptor{b.Descriptor}, nil
}

// Connect returns a new demo connection seeded with the canned state
// packet.
func (b *Backend) Connect(ctx context.Context, mac transport.MacAddress, selector transport.UUIDSelector) (transport.Connection, error) {
	if selector != nil {
		if _, err := selector([]uuid.UUID{}); err != nil {
			return nil, err
		}
	}

	conn := &Connection{
		statePacket: b.StatePacket,
		inbound:     make(chan []byte, 16),
		status:      make(chan transport.ConnectionStatus, 4),
	}
	conn.status <- transport.StatusConnected

	return conn, nil
}

// Connection is an in-memory transport.Connection: every outbound write
// is echoed back as an inbound ack, except a RequestState write which
// instead yields the canned state packet.
type Connection struct {
	mu          sync.Mutex
	statePacket wire.Packet
	inbound     chan []byte
	status      chan transport.ConnectionStatus
	closed      bool
}

// Write inspects the outbound frame and synthesises the matching inbound
// reply.
func (c *Connection) Write(ctx context.Context, p []byte) error {
	pkt, _, err := wire.Decode(wire.Outbound, p)
	if err != nil {
		return err
	}

	var reply wire.Packet
	if pkt.Command == [2]byte{0x01, 0x01} {
		reply = c.statePacket
	} else {
		// Local ack: echo the command back with an empty body.
		reply = wire.Packet{Command: pkt.Command}
	}

	framed := wire.Encode(wire.Inbound, reply)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	select {
	case c.inbound <- framed:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// ReadChannel returns the synthetic inbound stream.
func (c *Connection) ReadChannel() <-chan []byte { return c.inbound }

// StatusChannel returns the connection status stream.
func (c *Connection) StatusChannel() <-chan transport.ConnectionStatus { return c.status }

// Close tears down the demo connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.inbound)
	c.status <- transport.StatusDisconnected
	close(c.status)
	return nil
}
