// Package wire implements the Soundcore RFCOMM packet framing: header,
// length, body and a one-byte checksum.
package wire

import (
	"context"
	"errors"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Command is the 2-byte discriminator used to dispatch both inbound and
// outbound packets.
type Command [2]byte

// String returns the command as a hex pair, e.g. "06 81".
func (c Command) String() string {
	return fmt.Sprintf("%02X %02X", c[0], c[1])
}

// Packet is the decoded form of a single wire frame.
type Packet struct {
	Command Command
	Body    []byte
}

var (
	outboundPreamble = [5]byte{0x08, 0xEE, 0x00, 0x00, 0x00}
	inboundPreamble  = [5]byte{0x09, 0xFF, 0x00, 0x00, 0x01}
)

// Direction selects which preamble a packet is framed with.
type Direction int

const (
	// Outbound packets originate from the host.
	Outbound Direction = iota
	// Inbound packets originate from the device.
	Inbound
)

func preambleFor(dir Direction) [5]byte {
	if dir == Inbound {
		return inboundPreamble
	}
	return outboundPreamble
}

// Encode serialises a packet for the given direction: preamble, command,
// little-endian total length, body, checksum.
func Encode(dir Direction, p Packet) []byte {
	preamble := preambleFor(dir)
	total := len(preamble) + len(p.Command) + 2 + len(p.Body) + 1

	out := make([]byte, 0, total)
	out = append(out, preamble[:]...)
	out = append(out, p.Command[:]...)
	out = append(out, byte(total), byte(total>>8))
	out = append(out, p.Body...)
	out = append(out, checksum(out))

	return out
}

// checksum computes sum(bytes) mod 256.
func checksum(bytes []byte) byte {
	var sum byte
	for _, b := range bytes {
		sum += b
	}
	return sum
}

// Decode errors returned by Decode.
var (
	// ErrShortRead is returned when the buffer does not yet contain a
	// complete packet; the caller should retain the bytes and wait for
	// more to arrive.
	ErrShortRead = errors.New("wire: short read")

	ErrBadPreamble      = errors.New("wire: bad preamble")
	ErrBadLength        = errors.New("wire: bad length")
	ErrChecksumMismatch = errors.New("wire: checksum mismatch")
)

const headerLen = 5 + 2 + 2 // preamble + command + length field

// Decode consumes exactly one packet from buf, starting at offset 0, for
// the given direction. It returns the decoded packet and the number of
// bytes consumed. On ErrShortRead the caller should retain buf unchanged
// and append more bytes before calling again.
func Decode(dir Direction, buf []byte) (Packet, int, error) {
	if len(buf) < headerLen {
		if len(buf) > 0 && !matchesPreamblePrefix(dir, buf) {
			return Packet{}, 0, wrapDecodeErr(ErrBadPreamble, "decode-preamble-prefix")
		}
		return Packet{}, 0, ErrShortRead
	}

	preamble := preambleFor(dir)
	if !bytesEqual(buf[:5], preamble[:]) {
		return Packet{}, 0, wrapDecodeErr(ErrBadPreamble, "decode-preamble")
	}

	length := int(buf[7]) | int(buf[8])<<8
	if length < headerLen+1 {
		return Packet{}, 0, wrapDecodeErr(ErrBadLength, "decode-length-too-small")
	}
	if len(buf) < length {
		return Packet{}, 0, ErrShortRead
	}

	bodyLen := length - headerLen - 1
	body := make([]byte, bodyLen)
	copy(body, buf[7+2:7+2+bodyLen])

	wantChecksum := buf[length-1]
	gotChecksum := checksum(buf[:length-1])
	if wantChecksum != gotChecksum {
		return Packet{}, 0, wrapDecodeErr(ErrChecksumMismatch, "decode-checksum")
	}

	var cmd Command
	copy(cmd[:], buf[5:7])

	return Packet{Command: cmd, Body: body}, length, nil
}

func matchesPreamblePrefix(dir Direction, buf []byte) bool {
	preamble := preambleFor(dir)
	for i := range buf {
		if i >= len(preamble) {
			break
		}
		if buf[i] != preamble[i] {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func wrapDecodeErr(err error, at string) error {
	return fault.Wrap(err,
		fctx.With(context.Background(), "error_at", at),
		ftag.With(ftag.Internal),
		fmsg.With("could not decode inbound packet"),
	)
}

// StreamDecoder incrementally decodes a byte stream into packets, as fed
// by a Connection's read channel, which makes no framing assumption
// about chunk boundaries.
type StreamDecoder struct {
	dir Direction
	buf []byte
}

// NewStreamDecoder returns a decoder for the given direction.
func NewStreamDecoder(dir Direction) *StreamDecoder {
	return &StreamDecoder{dir: dir}
}

// Feed appends raw bytes to the decoder's internal buffer and returns any
// packets that can now be fully decoded. A fatal decode error drops the
// offending byte and resynchronises on the next preamble-shaped prefix,
// so that one malformed frame does not wedge the whole stream.
func (d *StreamDecoder) Feed(chunk []byte) ([]Packet, error) {
	d.buf = append(d.buf, chunk...)

	var packets []Packet
	for {
		if len(d.buf) == 0 {
			return packets, nil
		}

		p, n, err := Decode(d.dir, d.buf)
		switch {
		case err == nil:
			packets = append(packets, p)
			d.buf = d.buf[n:]
		case errors.Is(err, ErrShortRead):
			return packets, nil
		default:
			// Drop one byte and try to resynchronise; report the error
			// so the caller can log it, but keep the stream alive.
			d.buf = d.buf[1:]
			return packets, err
		}
	}
}
