package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := Packet{Command: Command{0x06, 0x81}, Body: []byte{0x01, 0x02, 0x03}}

	framed := Encode(Outbound, p)
	got, n, err := Decode(Outbound, framed)

	require.NoError(t, err)
	require.Equal(t, len(framed), n)
	require.Equal(t, p.Command, got.Command)
	require.Equal(t, p.Body, got.Body)
}

func TestDecodeShortRead(t *testing.T) {
	p := Packet{Command: Command{0x01, 0x01}, Body: []byte{0xAA, 0xBB}}
	framed := Encode(Inbound, p)

	_, _, err := Decode(Inbound, framed[:len(framed)-1])
	require.ErrorIs(t, err, ErrShortRead)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	p := Packet{Command: Command{0x01, 0x01}, Body: []byte{0xAA}}
	framed := Encode(Outbound, p)
	framed[len(framed)-1] ^= 0xFF

	_, _, err := Decode(Outbound, framed)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeBadPreamble(t *testing.T) {
	p := Packet{Command: Command{0x01, 0x01}, Body: nil}
	framed := Encode(Outbound, p)

	_, _, err := Decode(Inbound, framed)
	require.ErrorIs(t, err, ErrBadPreamble)
}

func TestStreamDecoderFeedAcrossChunks(t *testing.T) {
	p1 := Packet{Command: Command{0x01, 0x01}, Body: []byte{0x01}}
	p2 := Packet{Command: Command{0x06, 0x81}, Body: []byte{0x02, 0x03}}

	framed := append(Encode(Inbound, p1), Encode(Inbound, p2)...)

	d := NewStreamDecoder(Inbound)

	var got []Packet
	for _, b := range framed {
		packets, err := d.Feed([]byte{b})
		require.NoError(t, err)
		got = append(got, packets...)
	}

	require.Len(t, got, 2)
	require.Equal(t, p1.Command, got[0].Command)
	require.Equal(t, p2.Command, got[1].Command)
	require.Equal(t, p2.Body, got[1].Body)
}

func TestStreamDecoderResyncsAfterCorruption(t *testing.T) {
	good := Packet{Command: Command{0x06, 0x81}, Body: []byte{0x42}}
	corrupted := Encode(Outbound, good)
	corrupted[len(corrupted)-1] ^= 0xFF // corrupt checksum

	d := NewStreamDecoder(Outbound)

	var got []Packet
	chunk := append(corrupted, Encode(Outbound, good)...)
	for i, n := 0, len(chunk)+1; i < n; i++ {
		packets, err := d.Feed(chunk)
		chunk = nil // only the first Feed call supplies new bytes
		got = append(got, packets...)
		if len(got) > 0 {
			break
		}
		if err == nil && len(d.buf) == 0 {
			break
		}
	}

	require.Len(t, got, 1)
	require.Equal(t, good.Command, got[0].Command)
	require.Equal(t, good.Body, got[0].Body)
}
