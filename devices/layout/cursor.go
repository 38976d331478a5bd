// Package layout provides a small cursor for reading the fixed-layout
// state-update packet bodies each device family defines, so per-family
// parsers read like a field list instead of hand-tracked offsets.
package layout

import "github.com/soundcore-go/soundcore-core/errorkinds"

// Cursor reads sequential fields out of a packet body, tracking how
// many bytes remain so a short body fails with a clear error instead of
// panicking on an out-of-range slice.
type Cursor struct {
	body []byte
	pos  int
}

// NewCursor wraps body for sequential reads.
func NewCursor(body []byte) *Cursor { return &Cursor{body: body} }

// Take returns the next n bytes and advances the cursor, or
// errorkinds.MissingData if fewer than n bytes remain.
func (c *Cursor) Take(n int, what string) ([]byte, error) {
	if c.pos+n > len(c.body) {
		return nil, &errorkinds.MissingData{Name: what}
	}
	out := c.body[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// Byte returns the next single byte.
func (c *Cursor) Byte(what string) (byte, error) {
	b, err := c.Take(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Rest returns every byte from the current position to the end,
// without advancing past the end (there is nothing left to advance
// past).
func (c *Cursor) Rest() []byte {
	return c.body[c.pos:]
}
