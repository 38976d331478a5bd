// Package soundcore is the top-level façade a CLI or other frontend
// drives: it opens the persistence store, pairs/unpairs devices,
// connects to paired devices through a transport.Backend, and exposes
// the quick-preset operations scoped to a connected device (§4.9).
package soundcore

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/soundcore-go/soundcore-core/device"
	"github.com/soundcore-go/soundcore-core/devicemodel"
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/persistence"
	"github.com/soundcore-go/soundcore-core/quickpreset"
	"github.com/soundcore-go/soundcore-core/registry"
	"github.com/soundcore-go/soundcore-core/settings"
	"github.com/soundcore-go/soundcore-core/transport"
)

// Session owns the persistence store and the set of currently
// connected devices for one running instance of the control core.
type Session struct {
	store   *persistence.Store
	backend transport.Backend
	scanner *registry.Scanner
	logger  *log.Logger

	mu      sync.RWMutex
	devices map[string]device.Handle
}

// Open opens the SQLite store at dbPath and returns a Session bound to
// backend for subsequent connects.
func Open(ctx context.Context, dbPath string, backend transport.Backend, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	store, err := persistence.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return &Session{
		store:   store,
		backend: backend,
		scanner: registry.NewScanner(backend),
		logger:  logger,
		devices: make(map[string]device.Handle),
	}, nil
}

// Close disconnects every connected device and closes the store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for mac, d := range s.devices {
		if err := d.Disconnect(); err != nil {
			s.logger.Warn("disconnect on close failed", "mac", mac, "error", err)
		}
	}
	return s.store.Close()
}

// Discover returns every peer the backend has reported across every
// Discover call made on this Session, via an xsync-backed scan cache
// (registry.Scanner) so a UI polling loop sees a stable growing list
// rather than whatever subset the backend happens to report this tick.
// Peers that already have a paired record in the store are left out.
func (s *Session) Discover(ctx context.Context) ([]transport.ConnectionDescriptor, error) {
	found, err := s.scanner.Discover(ctx)
	if err != nil {
		return nil, err
	}
	unpaired := make([]transport.ConnectionDescriptor, 0, len(found))
	for _, d := range found {
		if _, err := s.store.PairedDevice(ctx, macString(d.Mac)); err != nil {
			unpaired = append(unpaired, d)
		}
	}
	return unpaired, nil
}

// Pair persists the given model/name for mac, without connecting, and
// drops it from the scan cache since it's no longer a bare scan result.
// demo marks the pairing as bound to the in-memory demo transport rather
// than a real adapter (§3, §6's `paired-devices add … [--demo]`).
func (s *Session) Pair(ctx context.Context, mac transport.MacAddress, model devicemodel.Model, name string, demo bool) error {
	if err := s.store.SavePairedDevice(ctx, persistence.PairedDevice{
		Mac:   macString(mac),
		Model: string(model),
		Name:  name,
		Demo:  demo,
	}); err != nil {
		return err
	}
	s.scanner.Forget(mac)
	return nil
}

// Unpair disconnects mac if connected and removes its persisted record.
// Quick presets are scoped by device model and are kept.
func (s *Session) Unpair(ctx context.Context, mac transport.MacAddress) error {
	key := macString(mac)

	s.mu.Lock()
	if d, ok := s.devices[key]; ok {
		d.Disconnect()
		delete(s.devices, key)
	}
	s.mu.Unlock()

	return s.store.RemovePairedDevice(ctx, key)
}

// PairedDevices lists every persisted pairing.
func (s *Session) PairedDevices(ctx context.Context) ([]persistence.PairedDevice, error) {
	return s.store.PairedDevices(ctx)
}

// Connect resolves mac's persisted model and dials it over the
// session's backend, selecting the Soundcore RFCOMM service UUID.
func (s *Session) Connect(ctx context.Context, mac transport.MacAddress, selector transport.UUIDSelector) (device.Handle, error) {
	key := macString(mac)

	paired, err := s.store.PairedDevice(ctx, key)
	if err != nil {
		return nil, err
	}

	d, err := registry.Connect(ctx, s.backend, devicemodel.Model(paired.Model), mac, paired.Name, selector, s.logger)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.devices[key] = d
	s.mu.Unlock()

	return d, nil
}

// Device returns the currently connected handle for mac, if any.
func (s *Session) Device(mac transport.MacAddress) (device.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.devices[macString(mac)]
	if !ok {
		return nil, errorkinds.ErrNotConnected
	}
	return d, nil
}

// Disconnect tears down mac's connection, if any, without unpairing it.
func (s *Session) Disconnect(mac transport.MacAddress) error {
	key := macString(mac)
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[key]
	if !ok {
		return errorkinds.ErrNotConnected
	}
	delete(s.devices, key)
	return d.Disconnect()
}

// modelFor resolves mac's persisted model, the key quick presets and
// equalizer profiles are scoped by (§3, §4.7: both are per-DeviceModel,
// not per physical paired device).
func (s *Session) modelFor(ctx context.Context, mac transport.MacAddress) (devicemodel.Model, error) {
	paired, err := s.store.PairedDevice(ctx, macString(mac))
	if err != nil {
		return "", err
	}
	return devicemodel.Model(paired.Model), nil
}

// SaveQuickPreset snapshots every setting whose value quickpreset.Save
// can carry off mac's connected device under name, scoped to its device
// model. Read-only toggles and ranges (battery level, charging, TWS
// status) are captured along with the writable ones.
func (s *Session) SaveQuickPreset(ctx context.Context, mac transport.MacAddress, name string) error {
	d, err := s.Device(mac)
	if err != nil {
		return err
	}
	model, err := s.modelFor(ctx, mac)
	if err != nil {
		return err
	}
	return quickpreset.Save(ctx, s.store, d, string(model), name)
}

// ActivateQuickPreset applies a saved preset to mac's connected device.
func (s *Session) ActivateQuickPreset(ctx context.Context, mac transport.MacAddress, name string) error {
	d, err := s.Device(mac)
	if err != nil {
		return err
	}
	model, err := s.modelFor(ctx, mac)
	if err != nil {
		return err
	}
	return quickpreset.Activate(ctx, s.store, d, string(model), name)
}

// ToggleQuickPresetField flips a single field's enable bit on a saved
// preset.
func (s *Session) ToggleQuickPresetField(ctx context.Context, mac transport.MacAddress, name string, id settings.Id, enabled bool) error {
	model, err := s.modelFor(ctx, mac)
	if err != nil {
		return err
	}
	return quickpreset.ToggleField(ctx, s.store, string(model), name, id, enabled)
}

// DeleteQuickPreset removes a saved preset.
func (s *Session) DeleteQuickPreset(ctx context.Context, mac transport.MacAddress, name string) error {
	model, err := s.modelFor(ctx, mac)
	if err != nil {
		return err
	}
	return quickpreset.Delete(ctx, s.store, string(model), name)
}

// QuickPresets lists the preset names saved for mac's device model.
func (s *Session) QuickPresets(ctx context.Context, mac transport.MacAddress) ([]string, error) {
	model, err := s.modelFor(ctx, mac)
	if err != nil {
		return nil, err
	}
	return s.store.QuickPresets(ctx, string(model))
}

func macString(mac transport.MacAddress) string {
	buf := make([]byte, 17)
	hex := "0123456789ABCDEF"
	for i, b := range mac {
		if i > 0 {
			buf[i*3-1] = ':'
		}
		buf[i*3] = hex[b>>4]
		buf[i*3+1] = hex[b&0xF]
	}
	return string(buf)
}
