package entity

import "errors"

// Domain errors for allow-list checks and DNS setup.
var (
	ErrEmptyEntry     = errors.New("allow-list entry is empty")
	ErrEmptyDomain    = errors.New("domain is required")
	ErrInvalidDomain  = errors.New("invalid domain")
	ErrInvalidPattern = errors.New("invalid strip pattern")
	ErrInvalidRule    = errors.New("invalid allow rule")
	ErrSourceNotFound = errors.New("allow-list source not found")
)
