// Package quickpreset implements save/activate/toggle/delete over a
// named snapshot of setting values scoped to a device model (§4.8).
package quickpreset

import (
	"context"

	"github.com/soundcore-go/soundcore-core/device"
	"github.com/soundcore-go/soundcore-core/errorkinds"
	"github.com/soundcore-go/soundcore-core/persistence"
	"github.com/soundcore-go/soundcore-core/settings"
)

// Save enumerates every category dev exposes and, for each setting
// that carries a reapplyable value, captures its current value into a
// preset named name under deviceModel, with every field's enable bit
// initially off (§4.8). Settings whose Kind carries no reapplyable
// value (Information, ImportString, Action) are skipped rather than
// failing the whole save.
func Save(ctx context.Context, store *persistence.Store, dev device.Handle, deviceModel, name string) error {
	fields := make(map[settings.Id]persistence.QuickPresetField)

	for _, cat := range dev.Categories() {
		for _, id := range dev.SettingsInCategory(cat) {
			s, err := dev.Setting(id)
			if err != nil {
				return err
			}
			v, err := settingToValue(s)
			if err != nil {
				continue
			}
			fields[id] = persistence.QuickPresetField{Value: v, Enabled: false}
		}
	}

	_, err := store.SaveQuickPreset(ctx, persistence.QuickPreset{
		DeviceModel: deviceModel,
		Name:        name,
		Fields:      fields,
	})
	return err
}

// Activate loads the preset named name for deviceModel, filters to the
// fields whose enable bit is set, and applies the survivors to dev in
// a single SetSettingValues call, so activation goes through the same
// module pipeline as any other setting change and therefore respects
// every firmware quirk (§4.8). A preset with no enabled fields issues
// no packets at all.
func Activate(ctx context.Context, store *persistence.Store, dev device.Handle, deviceModel, name string) error {
	preset, err := store.QuickPreset(ctx, deviceModel, name)
	if err != nil {
		return err
	}

	values := make(map[settings.Id]settings.Value, len(preset.Fields))
	for id, f := range preset.Fields {
		if f.Enabled {
			values[id] = f.Value
		}
	}
	if len(values) == 0 {
		return nil
	}
	return dev.SetSettingValues(ctx, values)
}

// ToggleField flips a single field's enable bit within an existing
// preset, leaving its captured value and every other field untouched,
// then re-saves it.
func ToggleField(ctx context.Context, store *persistence.Store, deviceModel, name string, id settings.Id, enabled bool) error {
	preset, err := store.QuickPreset(ctx, deviceModel, name)
	if err != nil {
		return err
	}

	f, ok := preset.Fields[id]
	if !ok {
		return &errorkinds.FeatureNotSupported{Feature: string(id)}
	}
	f.Enabled = enabled
	preset.Fields[id] = f

	_, err = store.SaveQuickPreset(ctx, preset)
	return err
}

// Delete removes a saved preset.
func Delete(ctx context.Context, store *persistence.Store, deviceModel, name string) error {
	return store.DeleteQuickPreset(ctx, deviceModel, name)
}

// settingToValue converts a Setting's current projection back into the
// Value shape SetSettingValues expects, so a snapshot can be replayed.
// Information, ImportString and Action settings carry no reapplyable
// value and are rejected.
func settingToValue(s settings.Setting) (settings.Value, error) {
	switch s.Kind {
	case settings.KindToggle:
		return settings.BoolValue(s.BoolValue), nil
	case settings.KindI32Range:
		return settings.I32Value(s.I32Value), nil
	case settings.KindSelect, settings.KindModifiableSelect:
		return settings.EnumValue(s.SelectValue), nil
	case settings.KindOptionalSelect:
		return settings.OptionalStringValue(s.OptionalValue), nil
	case settings.KindMultiSelect:
		return settings.StringVecValue(s.MultiValues), nil
	case settings.KindEqualizer:
		return settings.I16VecValue(s.EqValue), nil
	default:
		return settings.Value{}, &errorkinds.FeatureNotSupported{Feature: "quick preset snapshot of this setting kind"}
	}
}
