package render

import "errors"

// Sentinel kinds for export errors.
var (
	ErrRender = errors.New("render failed")
)
