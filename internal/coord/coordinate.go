// Package coord converts geographic coordinates between textual notations
// and auto-detects which notation an arbitrary input string uses.
package coord

import "errors"

var (
	// ErrRejected reports that a single converter's grammar did not match
	// the input. The registry consumes it while probing converters in order.
	ErrRejected = errors.New("input does not match format grammar")

	// ErrUnrecognized reports that no registered converter accepted the input.
	ErrUnrecognized = errors.New("coordinate format not recognized")
)

// Coordinate is the canonical (longitude, latitude) pair in degrees.
// Values are taken as parsed; no clamping to [-180,180] or [-90,90] is done.
type Coordinate struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
}

// Converter is a stateless bidirectional codec between a Coordinate and one
// textual notation. Implementations are immutable after construction and
// safe for concurrent use.
type Converter interface {
	// Name returns the human-readable notation name, stable across runs.
	Name() string

	// Parse accepts text in this converter's notation and returns the
	// decoded Coordinate, or ErrRejected when the grammar does not match.
	Parse(text string) (Coordinate, error)

	// Format renders the Coordinate in this notation. It is total: any
	// finite value produces output, out-of-range values degrade by the
	// notation's own rules (e.g. modular wraparound in packed formats).
	Format(c Coordinate) string
}
