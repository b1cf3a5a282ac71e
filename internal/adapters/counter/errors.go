package counter

import "errors"

// Sentinel kinds for counter-store errors.
var (
	ErrCorrupt = errors.New("counter file corrupt")
	ErrStore   = errors.New("counter store failed")
)
