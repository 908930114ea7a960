package search

import "fmt"

// Default option values, applied by DefaultOptions.
const (
	DefaultFuzzyThreshold = 0.3
	DefaultMaxResults     = 50
)

// Options configures a search call.
type Options struct {
	// FuzzyThreshold is the minimum per-field score for a field to count
	// as a match. Must be in [0,1].
	FuzzyThreshold float64

	// MaxResults caps the number of results returned. Must be positive.
	MaxResults int

	// Fields names the record fields to search, in order. Order does not
	// affect scoring. Must be non-empty.
	Fields []string

	// CaseSensitive disables case normalization before comparison.
	CaseSensitive bool

	// IncludeHighlights attaches literal-occurrence spans and rendered
	// segments to each match.
	IncludeHighlights bool
}

// DefaultOptions returns Options with the default threshold (0.3), result
// cap (50), and highlighting enabled, searching the given fields.
func DefaultOptions(fields ...string) Options {
	return Options{
		FuzzyThreshold:    DefaultFuzzyThreshold,
		MaxResults:        DefaultMaxResults,
		Fields:            fields,
		IncludeHighlights: true,
	}
}

// Validate reports the first out-of-contract option value. Invalid values
// are never clamped; they surface caller bugs immediately.
func (o Options) Validate() error {
	if o.FuzzyThreshold < 0 || o.FuzzyThreshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.FuzzyThreshold)
	}
	if o.MaxResults <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, o.MaxResults)
	}
	if len(o.Fields) == 0 {
		return ErrNoFields
	}
	return nil
}
