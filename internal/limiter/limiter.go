// Package limiter slices candidate lists for the --limit/--offset/--tail
// flags and for the popup window of the playground.
package limiter

import (
	"errors"
	"fmt"
)

// ErrConflict is returned when Limit and Tail are both set.
var ErrConflict = errors.New("--limit and --tail are mutually exclusive")

// Config holds the record-limiting parameters.
type Config struct {
	Limit  int // Show only this many records (0 = unlimited)
	Offset int // Skip the first N records (0 = no skip)
	Tail   int // Show only the last N records (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting flag combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return ErrConflict
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Bounds returns the half-open range [start, end) selected from a list of
// length records.
func (c Config) Bounds(length int) (start, end int) {
	if length <= 0 {
		return 0, 0
	}
	if c.Tail > 0 {
		return max(0, length-c.Tail), length
	}
	start = min(max(c.Offset, 0), length)
	end = length
	if c.Limit > 0 {
		end = min(start+c.Limit, length)
	}
	return start, end
}

// Apply returns the selected part of items. The result shares the backing
// array of items.
func Apply[T any](c Config, items []T) []T {
	if !c.IsActive() {
		return items
	}
	start, end := c.Bounds(len(items))
	return items[start:end]
}

// Window returns a Config showing at most height records of a list of
// length records, scrolled so that selected stays visible.
func Window(length, selected, height int) Config {
	if height <= 0 || length <= height {
		return Config{}
	}
	selected = min(max(selected, 0), length-1)
	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}
	return Config{Limit: height, Offset: offset}
}
