package packets

import (
	"fmt"

	"github.com/soundcore-go/soundcore-core/errorkinds"
)

func errShort(what string, want, got int) error {
	return &errorkinds.ParseError{
		Message: fmt.Sprintf("%s: expected at least %d bytes, got %d", what, want, got),
	}
}
