// Package iocontroller implements the packet I/O controller: it owns a
// single transport.Connection, serialises outbound writes, correlates a
// request with its response, and fans unsolicited inbound packets out to
// the owning device (§4.3).
package iocontroller

import (
	"context"
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/charmbracelet/log"
	"github.com/cskr/pubsub/v2"
	"go.uber.org/atomic"

	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/wire"
)

// DefaultTimeout is the per-call deadline used by SendWithResponse
// before a retry is attempted (§4.3, §9 open question: empirical).
const DefaultTimeout = 500 * time.Millisecond

// DefaultRetries is the number of additional attempts SendWithResponse
// makes after an initial timeout.
const DefaultRetries = 3

// broadcastTopic is the single topic every unsolicited inbound packet is
// published to.
const broadcastTopic = "all"

// Controller owns a single connection: it serialises outbound writes,
// correlates request/response pairs, and fans unsolicited packets out to
// any number of subscribers.
type Controller struct {
	conn   transport.Connection
	logger *log.Logger

	writeMu sync.Mutex
	closed  atomic.Bool

	responses *pubsub.PubSub[wire.Command, wire.Packet]
	broadcast *pubsub.PubSub[string, wire.Packet]

	done chan struct{}
}

// New starts a Controller reading from conn. The caller must call
// Close when the session ends.
func New(conn transport.Connection, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}

	c := &Controller{
		conn:      conn,
		logger:    logger,
		responses: pubsub.New[wire.Command, wire.Packet](16),
		broadcast: pubsub.New[string, wire.Packet](64),
		done:      make(chan struct{}),
	}

	go c.readLoop()

	return c
}

// readLoop pulls raw chunks from the connection, feeds them to a
// streaming decoder, and publishes each decoded packet to both the
// response-correlation topic and the broadcast topic.
func (c *Controller) readLoop() {
	defer close(c.done)

	dec := wire.NewStreamDecoder(wire.Inbound)

	for chunk := range c.conn.ReadChannel() {
		packets, err := dec.Feed(chunk)
		if err != nil {
			c.logger.Warn("dropping malformed inbound packet", "error", err)
		}

		for _, p := range packets {
			c.responses.Pub(p, p.Command)
			c.broadcast.Pub(p, broadcastTopic)
		}
	}
}

// Subscribe returns a channel of every inbound packet, including
// responses that a pending SendWithResponse call also receives.
func (c *Controller) Subscribe() (ch chan wire.Packet, unsubscribe func()) {
	ch = c.broadcast.Sub(broadcastTopic)
	return ch, func() { go c.broadcast.Unsub(ch, broadcastTopic) }
}

// Write serialises and sends an outbound packet without waiting for a
// response.
func (c *Controller) Write(ctx context.Context, p wire.Packet) error {
	if c.closed.Load() {
		return fault.Wrap(errorkinds.ErrNotConnected,
			fctx.With(ctx, "command", p.Command.String()),
			ftag.With(ftag.PermissionDenied),
			fmsg.With("controller is closed"))
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.Write(ctx, wire.Encode(wire.Outbound, p)); err != nil {
		return fault.Wrap(errorkinds.ErrWriteFailed,
			fctx.With(ctx, "command", p.Command.String()),
			ftag.With(ftag.Internal),
			fmsg.With("transport write failed"))
	}
	return nil
}

// SendWithResponse subscribes to inbound packets before writing, writes
// p, then awaits the first inbound packet whose command equals p's
// command, within DefaultTimeout. On timeout the packet is retried up to
// DefaultRetries times; if still unanswered, ActionTimedOut is returned.
func (c *Controller) SendWithResponse(ctx context.Context, p wire.Packet) (wire.Packet, error) {
	var lastErr error

	for attempt := 0; attempt <= DefaultRetries; attempt++ {
		resp, err := c.sendOnce(ctx, p)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return wire.Packet{}, lastErr
	}
	return wire.Packet{}, &errorkinds.ActionTimedOut{Action: p.Command.String()}
}

func (c *Controller) sendOnce(ctx context.Context, p wire.Packet) (wire.Packet, error) {
	ch := c.responses.Sub(p.Command)
	defer func() {
		go c.responses.Unsub(ch, p.Command)
	}()

	if err := c.Write(ctx, p); err != nil {
		return wire.Packet{}, err
	}

	timer := time.NewTimer(DefaultTimeout)
	defer timer.Stop()

	select {
	case resp := <-ch:
		return resp, nil
	case <-timer.C:
		return wire.Packet{}, fault.Wrap(&errorkinds.ActionTimedOut{Action: p.Command.String()},
			fctx.With(ctx, "timeout", DefaultTimeout.String()),
			ftag.With(ftag.Internal),
			fmsg.With("no response within deadline"))
	case <-ctx.Done():
		return wire.Packet{}, ctx.Err()
	}
}

// Close marks the controller closed and closes the connection, which
// ends the read loop. Later writes return ErrNotConnected.
func (c *Controller) Close() error {
	c.closed.Store(true)
	return c.conn.Close()
}
