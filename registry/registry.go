// Package registry resolves a devicemodel.Model onto the device family
// that builds and drives it, and connects a device.Handle over a given
// transport.Backend (§4.7).
package registry

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/soundcore-go/soundcore-core/device"
	"github.com/soundcore-go/soundcore-core/devicemodel"
	"github.com/soundcore-go/soundcore-core/devices/classic"
	"github.com/soundcore-go/soundcore-core/devices/classicdrc"
	"github.com/soundcore-go/soundcore-core/devices/hearid"
	"github.com/soundcore-go/soundcore-core/devices/typetwo"
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/transport"
)

// maxParallelProbes bounds how many candidate models ConnectAny dials
// concurrently, so a backend with a long candidate list never opens
// more than this many RFCOMM sessions at once.
const maxParallelProbes = 4

// Connector builds a device.Handle for one model, given an already
// chosen backend, peer address, display name and service-UUID
// selector.
type Connector func(
	ctx context.Context,
	backend transport.Backend,
	mac transport.MacAddress,
	name string,
	selector transport.UUIDSelector,
	logger *log.Logger,
) (device.Handle, error)

// ConnectorFor resolves model to the Connector for its family, via
// devicemodel.FamilyOf.
func ConnectorFor(model devicemodel.Model) (Connector, error) {
	switch devicemodel.FamilyOf(model) {
	case devicemodel.FamilyClassic:
		return connectClassic(model), nil
	case devicemodel.FamilyClassicDRC:
		return connectClassicDRC(model), nil
	case devicemodel.FamilyHearID:
		return connectHearID(model), nil
	case devicemodel.FamilyTypeTwo:
		return connectTypeTwo(model), nil
	default:
		return nil, &errorkinds.FeatureNotSupported{Feature: "device model " + string(model)}
	}
}

func connectClassic(model devicemodel.Model) Connector {
	return func(ctx context.Context, backend transport.Backend, mac transport.MacAddress, name string, selector transport.UUIDSelector, logger *log.Logger) (device.Handle, error) {
		return device.New(ctx, backend, mac, name, selector, model, classic.NewModuleCollection(), classic.ParseStateUpdate, logger)
	}
}

func connectClassicDRC(model devicemodel.Model) Connector {
	return func(ctx context.Context, backend transport.Backend, mac transport.MacAddress, name string, selector transport.UUIDSelector, logger *log.Logger) (device.Handle, error) {
		return device.New(ctx, backend, mac, name, selector, model, classicdrc.NewModuleCollection(), classicdrc.ParseStateUpdate, logger)
	}
}

func connectHearID(model devicemodel.Model) Connector {
	return func(ctx context.Context, backend transport.Backend, mac transport.MacAddress, name string, selector transport.UUIDSelector, logger *log.Logger) (device.Handle, error) {
		return device.New(ctx, backend, mac, name, selector, model, hearid.NewModuleCollection(), hearid.ParseStateUpdate, logger)
	}
}

func connectTypeTwo(model devicemodel.Model) Connector {
	return func(ctx context.Context, backend transport.Backend, mac transport.MacAddress, name string, selector transport.UUIDSelector, logger *log.Logger) (device.Handle, error) {
		return device.New(ctx, backend, mac, name, selector, model, typetwo.NewModuleCollection(), typetwo.ParseStateUpdate, logger)
	}
}

// Discover enumerates candidate peers visible to backend.
func Discover(ctx context.Context, backend transport.Backend) ([]transport.ConnectionDescriptor, error) {
	return backend.Devices(ctx)
}

// Scanner wraps a Backend with an xsync-backed cache of the last
// Discover result, keyed by the descriptor's mac string, so repeated
// UI refreshes don't re-enumerate peers the backend already reported
// in the current scan cycle.
type Scanner struct {
	backend transport.Backend
	seen    *xsync.MapOf[transport.MacAddress, transport.ConnectionDescriptor]
}

// NewScanner wraps backend with a fresh scan cache.
func NewScanner(backend transport.Backend) *Scanner {
	return &Scanner{
		backend: backend,
		seen:    xsync.NewMapOf[transport.MacAddress, transport.ConnectionDescriptor](),
	}
}

// Discover refreshes the cache from the backend and returns every
// descriptor seen so far across all calls on this Scanner.
func (s *Scanner) Discover(ctx context.Context) ([]transport.ConnectionDescriptor, error) {
	found, err := s.backend.Devices(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range found {
		s.seen.Store(d.Mac, d)
	}

	out := make([]transport.ConnectionDescriptor, 0, s.seen.Size())
	s.seen.Range(func(_ transport.MacAddress, d transport.ConnectionDescriptor) bool {
		out = append(out, d)
		return true
	})
	return out, nil
}

// Forget drops mac from the scan cache, e.g. once it has been paired
// and no longer needs to show up as a bare scan result.
func (s *Scanner) Forget(mac transport.MacAddress) {
	s.seen.Delete(mac)
}

// ConnectAny dials mac under each of candidates concurrently (bounded
// by maxParallelProbes), waits for every probe to finish, and returns
// the first handle that connected and parsed an initial state; any other
// successful handles are disconnected. Probes are not cancelled early. It is
// for the case where a peer's exact model isn't yet known and has to be
// probed for (§4.7's family dispatch assumes the model is already
// known; this is the discovery-time complement).
func ConnectAny(
	ctx context.Context,
	backend transport.Backend,
	candidates []devicemodel.Model,
	mac transport.MacAddress,
	name string,
	selector transport.UUIDSelector,
	logger *log.Logger,
) (device.Handle, error) {
	if len(candidates) == 0 {
		return nil, &errorkinds.FeatureNotSupported{Feature: "no candidate models to probe"}
	}

	sem := semaphore.NewWeighted(maxParallelProbes)
	group, groupCtx := errgroup.WithContext(ctx)

	results := make(chan device.Handle, len(candidates))

	for _, model := range candidates {
		model := model
		group.Go(func() error {
			if err := sem.Acquire(groupCtx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			d, err := Connect(groupCtx, backend, model, mac, name, selector, logger)
			if err != nil {
				return nil
			}
			results <- d
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	close(results)

	var winner device.Handle
	for d := range results {
		if winner == nil {
			winner = d
			continue
		}
		d.Disconnect()
	}
	if winner == nil {
		return nil, &errorkinds.FeatureNotSupported{Feature: "no candidate model matched"}
	}
	return winner, nil
}

// Connect resolves model's Connector and dials mac over backend.
func Connect(
	ctx context.Context,
	backend transport.Backend,
	model devicemodel.Model,
	mac transport.MacAddress,
	name string,
	selector transport.UUIDSelector,
	logger *log.Logger,
) (device.Handle, error) {
	connector, err := ConnectorFor(model)
	if err != nil {
		return nil, err
	}
	return connector(ctx, backend, mac, name, selector, logger)
}
