package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/settings"
)

// QuickPresetField is one captured setting within a QuickPreset: the
// value snapshotted at save time, and whether activation should
// actually write it (§3, §4.8).
type QuickPresetField struct {
	Value   settings.Value
	Enabled bool
}

// QuickPreset is a named, per-model bundle of setting values with
// per-field enable bits (§3, §4.8), scoped to a DeviceModel rather
// than to any single paired device: two paired devices of the same
// model share the same saved presets.
type QuickPreset struct {
	DeviceModel string
	Name        string
	Fields      map[settings.Id]QuickPresetField
}

// SaveQuickPreset inserts or replaces (by device_model, name) a quick
// preset.
func (s *Store) SaveQuickPreset(ctx context.Context, p QuickPreset) (int64, error) {
	encoded, err := json.Marshal(p.Fields)
	if err != nil {
		return 0, fmt.Errorf("persistence: encode quick preset: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quick_preset (device_model, name, fields) VALUES (?, ?, ?)
		ON CONFLICT (device_model, name) DO UPDATE SET fields = excluded.fields
	`, p.DeviceModel, p.Name, string(encoded))
	if err != nil {
		return 0, fmt.Errorf("persistence: save quick preset: %w", err)
	}
	return 0, nil
}

// DeleteQuickPreset removes a saved preset by (device_model, name).
func (s *Store) DeleteQuickPreset(ctx context.Context, deviceModel, name string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM quick_preset WHERE device_model = ? AND name = ?
	`, deviceModel, name)
	if err != nil {
		return fmt.Errorf("persistence: delete quick preset: %w", err)
	}
	return nil
}

// QuickPreset looks up a saved preset by (device_model, name).
func (s *Store) QuickPreset(ctx context.Context, deviceModel, name string) (QuickPreset, error) {
	var p QuickPreset
	p.DeviceModel, p.Name = deviceModel, name
	var encoded string

	row := s.db.QueryRowContext(ctx, `
		SELECT fields FROM quick_preset WHERE device_model = ? AND name = ?
	`, deviceModel, name)
	if err := row.Scan(&encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuickPreset{}, &errorkinds.MissingData{Name: name}
		}
		return QuickPreset{}, fmt.Errorf("persistence: read quick preset: %w", err)
	}
	if err := json.Unmarshal([]byte(encoded), &p.Fields); err != nil {
		return QuickPreset{}, fmt.Errorf("persistence: decode quick preset: %w", err)
	}
	return p, nil
}

// QuickPresets lists every saved preset name for deviceModel.
func (s *Store) QuickPresets(ctx context.Context, deviceModel string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM quick_preset WHERE device_model = ? ORDER BY name
	`, deviceModel)
	if err != nil {
		return nil, fmt.Errorf("persistence: list quick presets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("persistence: scan quick preset name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
