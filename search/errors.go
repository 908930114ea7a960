package search

import "errors"

// Configuration errors. Options are validated before any scoring happens;
// out-of-contract values fail fast rather than being silently clamped.
var (
	ErrInvalidThreshold = errors.New("fuzzy threshold must be in [0,1]")
	ErrInvalidLimit     = errors.New("max results must be positive")
	ErrNoFields         = errors.New("at least one search field is required")
)
