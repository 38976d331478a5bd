package packets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcore-go/soundcore-core/wire"
)

func TestRegistryNamesKnownCommands(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, "StateUpdate", r.Name(CommandStateUpdate))
	require.Equal(t, "SetEqualizerWithHearID", r.Name(CommandSetEqualizerWithHearID))
}

func TestRegistryNameFallsBackToUnknown(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, "unknown", r.Name(wire.Command{0xFF, 0xFF}))
}

func TestRegistryRegisterOverridesName(t *testing.T) {
	r := NewRegistry()
	custom := wire.Command{0x09, 0x09}
	r.Register(custom, "CustomCommand")
	require.Equal(t, "CustomCommand", r.Name(custom))

	r.Register(CommandStateUpdate, "Overridden")
	require.Equal(t, "Overridden", r.Name(CommandStateUpdate))
}
