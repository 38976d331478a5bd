// Package transport defines the RFCOMM backend trait the device control
// core depends on. Concrete backends (a real Bluetooth stack adapter, or
// the in-memory demo backend in transport/demo) are external
// collaborators per §1; the core only ever sees this interface.
package transport

import (
	"context"

	"github.com/google/uuid"
)

// ConnectionStatus is the state of a single device connection, as
// observed on a watch channel.
type ConnectionStatus int

// The connection status values.
const (
	StatusDisconnected ConnectionStatus = iota
	StatusConnecting
	StatusConnected
	StatusReconnecting
)

func (s ConnectionStatus) String() string {
	switch s {
	case StatusConnecting:
		return "Connecting"
	case StatusConnected:
		return "Connected"
	case StatusReconnecting:
		return "Reconnecting"
	default:
		return "Disconnected"
	}
}

// MacAddress is the stable 6-byte key for a Bluetooth peer.
type MacAddress [6]byte

// ConnectionDescriptor is a transient scan result.
type ConnectionDescriptor struct {
	Mac  MacAddress
	Name string
}

// UUIDSelector chooses which RFCOMM service UUID to connect to, given
// the set of UUIDs a peer advertises; it lets the caller of Connect pick
// the Soundcore serial-port profile without the backend hardcoding it.
type UUIDSelector func(advertised []uuid.UUID) (uuid.UUID, error)

// Backend is the trait the device control core depends on for discovery
// and connection establishment. The core never talks to a Bluetooth
// stack directly.
type Backend interface {
	// Devices enumerates currently visible Bluetooth peers.
	Devices(ctx context.Context) ([]ConnectionDescriptor, error)

	// Connect establishes an RFCOMM session with mac, selecting a
	// service UUID via selector.
	Connect(ctx context.Context, mac MacAddress, selector UUIDSelector) (Connection, error)
}

// Connection is a single established RFCOMM session.
type Connection interface {
	// Write sends bytes on the RFCOMM channel. It blocks (in the
	// suspension sense) until the byte handoff completes.
	Write(ctx context.Context, p []byte) error

	// ReadChannel returns a channel of raw inbound chunks, consumable
	// once, with no framing assumption: each receive may be an
	// arbitrary-size slice of the byte stream.
	ReadChannel() <-chan []byte

	// StatusChannel returns a channel that observes this connection's
	// status over time; it is closed when the connection is torn down.
	StatusChannel() <-chan ConnectionStatus

	// Close tears down the connection. The transport does not retry;
	// reconnection policy belongs to the device object.
	Close() error
}
