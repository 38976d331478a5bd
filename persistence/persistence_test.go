package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/settings"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPairedDeviceRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePairedDevice(ctx, PairedDevice{
		Mac: "AA:BB:CC:DD:EE:FF", Model: "A3028", Name: "Q30", Demo: true,
	}))

	got, err := store.PairedDevice(ctx, "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	require.Equal(t, "A3028", got.Model)
	require.Equal(t, "Q30", got.Name)
	require.True(t, got.Demo)

	require.NoError(t, store.SavePairedDevice(ctx, PairedDevice{
		Mac: "AA:BB:CC:DD:EE:FF", Model: "A3028", Name: "Renamed", Demo: false,
	}))
	got, err = store.PairedDevice(ctx, "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.False(t, got.Demo, "re-pairing updates demo along with name/model")

	all, err := store.PairedDevices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPairedDeviceNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.PairedDevice(context.Background(), "00:00:00:00:00:00")
	require.Error(t, err)
}

func TestEqualizerProfileSameCurveUnderNewNameReplacesName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3028", Name: "Bright", PresetID: 0xFEFE, Adjustments: [][]int8{{1, 2, 3}},
	})
	require.NoError(t, err)

	// Saving the same curve under a new name renames the existing row
	// rather than creating a duplicate (§8).
	_, err = store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3028", Name: "Bright v2", PresetID: 0xFEFE, Adjustments: [][]int8{{1, 2, 3}},
	})
	require.NoError(t, err)

	names, err := store.EqualizerProfiles(ctx, "A3028")
	require.NoError(t, err)
	require.Equal(t, []string{"Bright v2"}, names)

	got, err := store.EqualizerProfile(ctx, "A3028", "Bright v2")
	require.NoError(t, err)
	require.Equal(t, [][]int8{{1, 2, 3}}, got.Adjustments)
}

func TestEqualizerProfileSameNameUpdatesCurve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3028", Name: "Bright", PresetID: 0xFEFE, Adjustments: [][]int8{{1, 2, 3}},
	})
	require.NoError(t, err)

	_, err = store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3028", Name: "Bright", PresetID: 0xFEFE, Adjustments: [][]int8{{4, 5, 6}},
	})
	require.NoError(t, err)

	got, err := store.EqualizerProfile(ctx, "A3028", "Bright")
	require.NoError(t, err)
	require.Equal(t, [][]int8{{4, 5, 6}}, got.Adjustments)

	names, err := store.EqualizerProfiles(ctx, "A3028")
	require.NoError(t, err)
	require.Equal(t, []string{"Bright"}, names)
}

func TestEqualizerProfileScopedPerDeviceModel(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3028", Name: "Bright", PresetID: 0xFEFE, Adjustments: [][]int8{{1, 2, 3}},
	})
	require.NoError(t, err)

	// Same name, same curve, different model: no collision.
	_, err = store.SaveEqualizerProfile(ctx, EqualizerProfile{
		DeviceModel: "A3027", Name: "Bright", PresetID: 0xFEFE, Adjustments: [][]int8{{1, 2, 3}},
	})
	require.NoError(t, err)

	a3028Names, err := store.EqualizerProfiles(ctx, "A3028")
	require.NoError(t, err)
	require.Equal(t, []string{"Bright"}, a3028Names)

	a3027Names, err := store.EqualizerProfiles(ctx, "A3027")
	require.NoError(t, err)
	require.Equal(t, []string{"Bright"}, a3027Names)
}

func TestQuickPresetScopedByModelSurvivesUnpair(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePairedDevice(ctx, PairedDevice{
		Mac: "AA:BB:CC:DD:EE:FF", Model: "A3028", Name: "Q30", Demo: false,
	}))

	_, err := store.SaveQuickPreset(ctx, QuickPreset{
		DeviceModel: "A3028", Name: "commute",
	})
	require.NoError(t, err)

	names, err := store.QuickPresets(ctx, "A3028")
	require.NoError(t, err)
	require.Equal(t, []string{"commute"}, names)

	// Unpairing the device does not remove the preset: it is scoped to
	// the model, and another paired device of that model (or the same
	// device re-paired later) should still see it (§3, §4.7).
	require.NoError(t, store.RemovePairedDevice(ctx, "AA:BB:CC:DD:EE:FF"))

	names, err = store.QuickPresets(ctx, "A3028")
	require.NoError(t, err)
	require.Equal(t, []string{"commute"}, names)
}

func TestQuickPresetSaveReplacesByModelAndName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveQuickPreset(ctx, QuickPreset{
		DeviceModel: "A3028", Name: "commute",
		Fields: map[settings.Id]QuickPresetField{},
	})
	require.NoError(t, err)

	_, err = store.SaveQuickPreset(ctx, QuickPreset{
		DeviceModel: "A3028", Name: "commute",
		Fields: map[settings.Id]QuickPresetField{settings.IdAmbientSoundMode: {Enabled: true}},
	})
	require.NoError(t, err)

	got, err := store.QuickPreset(ctx, "A3028", "commute")
	require.NoError(t, err)
	require.Len(t, got.Fields, 1)
}
