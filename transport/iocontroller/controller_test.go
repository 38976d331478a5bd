package iocontroller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/wire"
)

// fakeConnection is a transport.Connection whose Write optionally queues
// an encoded inbound reply onto its own read channel, letting tests
// drive request/response correlation without a real transport.
type fakeConnection struct {
	reads   chan []byte
	status  chan transport.ConnectionStatus
	closed  chan struct{}

	onWrite func(p []byte)
}

func newFakeConnection() *fakeConnection {
	return &fakeConnection{
		reads:  make(chan []byte, 16),
		status: make(chan transport.ConnectionStatus),
		closed: make(chan struct{}),
	}
}

func (f *fakeConnection) Write(ctx context.Context, p []byte) error {
	if f.onWrite != nil {
		f.onWrite(p)
	}
	return nil
}

func (f *fakeConnection) ReadChannel() <-chan []byte { return f.reads }

func (f *fakeConnection) StatusChannel() <-chan transport.ConnectionStatus { return f.status }

func (f *fakeConnection) Close() error {
	select {
	case <-f.closed:
	default:
		close(f.closed)
		close(f.reads)
	}
	return nil
}

func TestSendWithResponseCorrelatesReplyByCommand(t *testing.T) {
	conn := newFakeConnection()
	conn.onWrite = func(p []byte) {
		reply := wire.Encode(wire.Inbound, wire.Packet{Command: [2]byte{0x01, 0x01}, Body: []byte{0x42}})
		conn.reads <- reply
	}

	c := New(conn, nil)
	defer c.Close()

	resp, err := c.SendWithResponse(context.Background(), wire.Packet{Command: [2]byte{0x01, 0x01}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x42}, resp.Body)
}

func TestSendWithResponseTimesOutWhenNoReplyArrives(t *testing.T) {
	conn := newFakeConnection()
	c := New(conn, nil)
	defer c.Close()

	start := time.Now()
	_, err := c.SendWithResponse(context.Background(), wire.Packet{Command: [2]byte{0x09, 0x09}})
	elapsed := time.Since(start)

	var timedOut *errorkinds.ActionTimedOut
	require.ErrorAs(t, err, &timedOut)
	require.GreaterOrEqual(t, elapsed, DefaultTimeout*time.Duration(DefaultRetries+1))
}

func TestSubscribeFansOutToMultipleSubscribers(t *testing.T) {
	conn := newFakeConnection()
	c := New(conn, nil)
	defer c.Close()

	ch1, unsub1 := c.Subscribe()
	defer unsub1()
	ch2, unsub2 := c.Subscribe()
	defer unsub2()

	conn.reads <- wire.Encode(wire.Inbound, wire.Packet{Command: [2]byte{0x03, 0x03}, Body: []byte{1, 2, 3}})

	for _, ch := range []chan wire.Packet{ch1, ch2} {
		select {
		case p := <-ch:
			require.Equal(t, []byte{1, 2, 3}, p.Body)
		case <-time.After(time.Second):
			t.Fatal("expected broadcast delivery")
		}
	}
}

func TestWriteAfterCloseReturnsNotConnected(t *testing.T) {
	conn := newFakeConnection()
	c := New(conn, nil)
	require.NoError(t, c.Close())

	err := c.Write(context.Background(), wire.Packet{Command: [2]byte{0x01, 0x01}})
	require.ErrorIs(t, err, errorkinds.ErrNotConnected)
}
