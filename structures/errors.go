package structures

import (
	"fmt"

	"github.com/soundcore-go/soundcore-core/errorkinds"
)

// errShortBody builds the ParseError reported when a packet body is
// shorter than the fixed-size structure requires.
func errShortBody(what string, want, got int) error {
	return &errorkinds.ParseError{
		Message: fmt.Sprintf("%s: expected at least %d bytes, got %d", what, want, got),
	}
}
