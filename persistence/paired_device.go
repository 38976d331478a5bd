package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soundcore-go/soundcore-core/errorkinds"
)

// PairedDevice is a previously paired device's persisted identity
// (§3's `{name, mac, model, demo}`).
type PairedDevice struct {
	Mac   string
	Model string
	Name  string
	Demo  bool
}

// SavePairedDevice inserts or updates the record for d.Mac.
func (s *Store) SavePairedDevice(ctx context.Context, d PairedDevice) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO paired_device (mac, model, name, demo) VALUES (?, ?, ?, ?)
		ON CONFLICT(mac) DO UPDATE SET model = excluded.model, name = excluded.name, demo = excluded.demo
	`, d.Mac, d.Model, d.Name, d.Demo)
	if err != nil {
		return fmt.Errorf("persistence: save paired device: %w", err)
	}
	return nil
}

// RemovePairedDevice deletes the paired record for mac. Quick presets
// and equalizer profiles are scoped by device model, not by mac, so
// unpairing a device leaves any presets saved for its model intact for
// the next device of that model to use.
func (s *Store) RemovePairedDevice(ctx context.Context, mac string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM paired_device WHERE mac = ?`, mac)
	if err != nil {
		return fmt.Errorf("persistence: remove paired device: %w", err)
	}
	return nil
}

// PairedDevice looks up a single paired device by mac.
func (s *Store) PairedDevice(ctx context.Context, mac string) (PairedDevice, error) {
	var d PairedDevice
	row := s.db.QueryRowContext(ctx, `SELECT mac, model, name, demo FROM paired_device WHERE mac = ?`, mac)
	if err := row.Scan(&d.Mac, &d.Model, &d.Name, &d.Demo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PairedDevice{}, errorkinds.ErrDeviceNotFound
		}
		return PairedDevice{}, fmt.Errorf("persistence: read paired device: %w", err)
	}
	return d, nil
}

// PairedDevices lists every paired device.
func (s *Store) PairedDevices(ctx context.Context) ([]PairedDevice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT mac, model, name, demo FROM paired_device ORDER BY mac`)
	if err != nil {
		return nil, fmt.Errorf("persistence: list paired devices: %w", err)
	}
	defer rows.Close()

	var out []PairedDevice
	for rows.Next() {
		var d PairedDevice
		if err := rows.Scan(&d.Mac, &d.Model, &d.Name, &d.Demo); err != nil {
			return nil, fmt.Errorf("persistence: scan paired device: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
