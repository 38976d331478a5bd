// Package device implements the per-connection Device object (§4.6): it
// owns a packet I/O controller and a model's module collection, drives
// the connect/request-state/parse sequence, and exposes the
// settings_in_category / setting / set_setting_values surface a session
// façade calls into.
package device

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cskr/pubsub/v2"
	"go.uber.org/atomic"

	"github.com/soundcore-go/soundcore-core/devicemodel"
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/modules"
	"github.com/soundcore-go/soundcore-core/packets"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/transport"
	"github.com/soundcore-go/soundcore-core/transport/iocontroller"
	"github.com/soundcore-go/soundcore-core/wire"
)

// ConnectionStatus tracks a Device's lifecycle, one step finer than the
// underlying transport.ConnectionStatus: a connection is not usable
// until the initial state has been fetched and parsed.
type ConnectionStatus int

// The device connection status values.
const (
	StatusDisconnected ConnectionStatus = iota
	StatusConnecting
	StatusStateInitializing
	StatusConnected
	StatusReconnecting
)

func (s ConnectionStatus) String() string {
	switch s {
	case StatusConnecting:
		return "Connecting"
	case StatusStateInitializing:
		return "StateInitializing"
	case StatusConnected:
		return "Connected"
	case StatusReconnecting:
		return "Reconnecting"
	default:
		return "Disconnected"
	}
}

const changedTopic = "changed"

// Handle is the model-agnostic surface a session façade drives: every
// Device[State] implements it regardless of its State type, which lets
// a registry hold a heterogeneous set of connected devices behind one
// interface.
type Handle interface {
	ConnectionStatus() ConnectionStatus
	Model() devicemodel.Model
	Name() string
	Categories() []settings.Category
	SettingsInCategory(settings.Category) []settings.Id
	Setting(settings.Id) (settings.Setting, error)
	WatchForChanges() (<-chan []settings.Id, func())
	SetSettingValues(context.Context, map[settings.Id]settings.Value) error
	Disconnect() error
}

// Device is a single connected Soundcore headphone: a controller, a
// model-specific module collection, and the live State those modules
// read and mutate. It is safe for concurrent use.
type Device[State any] struct {
	mac   transport.MacAddress
	model devicemodel.Model
	name  string

	controller *iocontroller.Controller
	mc         *modules.ModuleCollection[State]

	mu     sync.RWMutex
	state  State
	status atomic.Int32

	changed *pubsub.PubSub[string, []settings.Id]
	logger  *log.Logger
}

// New connects to mac via backend, requests and parses the initial
// state, and starts the background packet-handler task, per §4.6's
// Connecting -> StateInitializing -> Connected sequence.
func New[State any](
	ctx context.Context,
	backend transport.Backend,
	mac transport.MacAddress,
	name string,
	selector transport.UUIDSelector,
	model devicemodel.Model,
	mc *modules.ModuleCollection[State],
	parseState func([]byte) (State, error),
	logger *log.Logger,
) (*Device[State], error) {
	if logger == nil {
		logger = log.Default()
	}

	d := &Device[State]{
		mac:     mac,
		model:   model,
		name:    name,
		mc:      mc,
		changed: pubsub.New[string, []settings.Id](16),
		logger:  logger,
	}
	d.status.Store(int32(StatusConnecting))

	conn, err := backend.Connect(ctx, mac, selector)
	if err != nil {
		d.status.Store(int32(StatusDisconnected))
		return nil, err
	}

	d.controller = iocontroller.New(conn, logger)
	d.status.Store(int32(StatusStateInitializing))

	resp, err := d.controller.SendWithResponse(ctx, packets.RequestState())
	if err != nil {
		d.controller.Close()
		d.status.Store(int32(StatusDisconnected))
		return nil, err
	}

	state, err := parseState(resp.Body)
	if err != nil {
		d.controller.Close()
		d.status.Store(int32(StatusDisconnected))
		return nil, err
	}

	d.mu.Lock()
	d.state = state
	d.mu.Unlock()
	d.status.Store(int32(StatusConnected))

	unsolicited, _ := d.controller.Subscribe()
	go d.packetHandlerLoop(unsolicited)

	return d, nil
}

// packetHandlerLoop applies every unsolicited inbound packet to state
// via the module collection, notifying watchers when it actually
// changes something (§4.6's packet-handler task).
func (d *Device[State]) packetHandlerLoop(inbound <-chan wire.Packet) {
	for p := range inbound {
		d.mu.Lock()
		changed, err := d.mc.HandlePacket(&d.state, p)
		d.mu.Unlock()

		if err != nil {
			d.logger.Warn("packet handler error", "command", p.Command.String(), "error", err)
			continue
		}
		if changed {
			d.changed.Pub(nil, changedTopic)
		}
	}
}

// ConnectionStatus reports this device's current lifecycle state.
func (d *Device[State]) ConnectionStatus() ConnectionStatus {
	return ConnectionStatus(d.status.Load())
}

// Model returns the device model this Device was built for.
func (d *Device[State]) Model() devicemodel.Model { return d.model }

// Name returns the device's discovered or configured display name.
func (d *Device[State]) Name() string { return d.name }

// Categories lists the setting categories this device's module
// collection exposes.
func (d *Device[State]) Categories() []settings.Category {
	return d.mc.Categories()
}

// SettingsInCategory lists the Ids registered under category.
func (d *Device[State]) SettingsInCategory(category settings.Category) []settings.Id {
	return d.mc.SettingsInCategory(category)
}

// Setting projects a single Id out of the live state.
func (d *Device[State]) Setting(id settings.Id) (settings.Setting, error) {
	if d.ConnectionStatus() != StatusConnected {
		return settings.Setting{}, errorkinds.ErrStateInitializing
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mc.Setting(d.state, id)
}

// WatchForChanges returns a channel of change notifications, and an
// unsubscribe function. A packet handler that changes state publishes
// nil; a successful SetSettingValues call publishes the Ids it was
// given, even when no packet had to be sent.
func (d *Device[State]) WatchForChanges() (ch <-chan []settings.Id, unsubscribe func()) {
	sub := d.changed.Sub(changedTopic)
	return sub, func() { go d.changed.Unsub(sub, changedTopic) }
}

// SetSettingValues applies values to a clone of the live state, then
// drives every registered StateModifier in registration order: diff
// the modifier's slice of current vs target, send the packets it
// produces, and commit its delta into the live state once they are
// acknowledged, before moving to the next modifier (§4.4, §4.6, §8's
// "order of activation equals order of set_setting_values' internal
// iteration, which is stable across runs"). Per §4.4's partial-failure
// policy, a modifier that fails partway through is not rolled back,
// the remaining modifiers are not attempted, and the live state
// reflects whatever was committed by the modifiers that already
// succeeded.
func (d *Device[State]) SetSettingValues(ctx context.Context, values map[settings.Id]settings.Value) error {
	if d.ConnectionStatus() != StatusConnected {
		return errorkinds.ErrStateInitializing
	}

	d.mu.Lock()
	current := d.state
	d.mu.Unlock()

	target, err := d.mc.BuildTarget(current, values)
	if err != nil {
		return err
	}

	for _, mod := range d.mc.Modifiers() {
		d.mu.Lock()
		current = d.state
		d.mu.Unlock()

		outbound, err := mod.Diff(current, target)
		if err != nil {
			return err
		}

		for _, p := range outbound {
			if _, err := d.controller.SendWithResponse(ctx, p); err != nil {
				return err
			}
		}

		d.mu.Lock()
		mod.Commit(&d.state, target)
		d.mu.Unlock()
	}

	d.changed.Pub(idsOf(values), changedTopic)
	return nil
}

func idsOf(values map[settings.Id]settings.Value) []settings.Id {
	ids := make([]settings.Id, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	return ids
}

// Disconnect tears down the connection. The Device is unusable
// afterwards; a caller that wants to reconnect should build a new one.
func (d *Device[State]) Disconnect() error {
	d.status.Store(int32(StatusDisconnected))
	return d.controller.Close()
}
