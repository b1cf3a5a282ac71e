package upstream

import "errors"

// Sentinel kinds for upstream fetch errors.
var (
	ErrNotFound = errors.New("resource not found upstream")
	ErrUpstream = errors.New("upstream request failed")
)
