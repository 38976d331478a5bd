package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soundcore-go/soundcore-core/errorkinds"
)

// EqualizerProfile is a saved custom equalizer curve, scoped to the
// device model it was captured from and keyed by name within that
// model (§4.7, §6). The schema's dual unique index — (device_model,
// name) and (device_model, json(adjustments)) — means the same curve
// can never be saved under two names for one model, and a name can
// never refer to two different curves for that model; saving over
// either collision updates the existing row in place rather than
// erroring, per §8's "inserting two profiles with identical band
// vectors under the same device_model replaces the name rather than
// creating a duplicate."
type EqualizerProfile struct {
	ID          int64
	DeviceModel string
	Name        string
	PresetID    uint16
	Adjustments [][]int8
}

// SaveEqualizerProfile inserts a new profile for p.DeviceModel, or
// updates the existing row if p.Name or p.Adjustments already match
// one under that model.
func (s *Store) SaveEqualizerProfile(ctx context.Context, p EqualizerProfile) (int64, error) {
	encoded, err := json.Marshal(p.Adjustments)
	if err != nil {
		return 0, fmt.Errorf("persistence: encode equalizer profile: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO equalizer_profile (device_model, name, preset_id, adjustments)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (device_model, name)
			DO UPDATE SET preset_id = excluded.preset_id, adjustments = excluded.adjustments
		ON CONFLICT (device_model, json(adjustments))
			DO UPDATE SET name = excluded.name, preset_id = excluded.preset_id
	`, p.DeviceModel, p.Name, p.PresetID, string(encoded))
	if err != nil {
		return 0, fmt.Errorf("persistence: save equalizer profile: %w", err)
	}

	id, err := res.LastInsertId()
	if err == nil && id != 0 {
		return id, nil
	}

	got, err := s.EqualizerProfile(ctx, p.DeviceModel, p.Name)
	if err != nil {
		return 0, fmt.Errorf("%w: could not resolve id after upsert", errorkinds.ErrStorageError)
	}
	return got.ID, nil
}

// DeleteEqualizerProfile removes a saved profile by (deviceModel, name).
func (s *Store) DeleteEqualizerProfile(ctx context.Context, deviceModel, name string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM equalizer_profile WHERE device_model = ? AND name = ?
	`, deviceModel, name)
	if err != nil {
		return fmt.Errorf("persistence: delete equalizer profile: %w", err)
	}
	return nil
}

// EqualizerProfile looks up a saved profile by (deviceModel, name).
func (s *Store) EqualizerProfile(ctx context.Context, deviceModel, name string) (EqualizerProfile, error) {
	var p EqualizerProfile
	p.DeviceModel = deviceModel
	var encoded string
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, preset_id, adjustments FROM equalizer_profile
		WHERE device_model = ? AND name = ?
	`, deviceModel, name)
	if err := row.Scan(&p.ID, &p.Name, &p.PresetID, &encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EqualizerProfile{}, &errorkinds.MissingData{Name: name}
		}
		return EqualizerProfile{}, fmt.Errorf("persistence: read equalizer profile: %w", err)
	}
	if err := json.Unmarshal([]byte(encoded), &p.Adjustments); err != nil {
		return EqualizerProfile{}, fmt.Errorf("persistence: decode equalizer profile: %w", err)
	}
	return p, nil
}

// EqualizerProfiles lists every saved profile name for deviceModel.
func (s *Store) EqualizerProfiles(ctx context.Context, deviceModel string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM equalizer_profile WHERE device_model = ? ORDER BY name
	`, deviceModel)
	if err != nil {
		return nil, fmt.Errorf("persistence: list equalizer profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("persistence: scan equalizer profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
