// Package pathfind defines sentinel errors and result conventions for
// minimal-path enumeration over a keypad layout.
package pathfind

import (
	"errors"
)

// Sentinel errors for path enumeration.
var (
	// ErrNilLayout is returned if the Finder was built around a nil layout.
	ErrNilLayout = errors.New("pathfind: layout is nil")
)
