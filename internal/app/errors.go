package app

import "errors"

// Sentinel kinds for application errors.
var (
	ErrNoExporter = errors.New("no exporter configured")
	ErrNoSubject  = errors.New("no subject selected")
)
