package coord

import "fmt"

// Registry holds the converter set in detection priority order: the loosest
// grammars come first so a strict notation never shadows a permissive one
// that should have matched. The order is part of the API contract.
type Registry struct {
	converters []Converter
}

// NewRegistry builds the standard converter set. The registry is immutable
// and safe for concurrent use.
func NewRegistry() *Registry {
	return &Registry{converters: []Converter{
		NewDecimalDegrees(),
		NewWolframAlphaDegrees(),
		NewHexFixedPoint(),
		NewHexFixedPointC(),
		NewDecimalFixedPoint(),
		NewDMSGeneric(),
		NewDMSLFV(),
		NewDMSNaviDisplay(),
		NewRadian(),
		NewParcelID(),
	}}
}

// Names returns the notation names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.converters))
	for i, c := range r.converters {
		names[i] = c.Name()
	}
	return names
}

// Len returns the number of registered converters.
func (r *Registry) Len() int { return len(r.converters) }

// Detect tries every converter in priority order and returns the name of
// the first one accepting the input together with the decoded Coordinate.
// ErrUnrecognized is returned when no grammar matches; the caller keeps
// ownership of whatever coordinate it held before.
func (r *Registry) Detect(text string) (string, Coordinate, error) {
	for _, c := range r.converters {
		coord, err := c.Parse(text)
		if err != nil {
			continue
		}
		return c.Name(), coord, nil
	}
	return "", Coordinate{}, ErrUnrecognized
}

// FormatAll renders the coordinate in every notation, index-aligned with
// Names.
func (r *Registry) FormatAll(c Coordinate) []string {
	out := make([]string, len(r.converters))
	for i, conv := range r.converters {
		out[i] = conv.Format(c)
	}
	return out
}

// FormatAt renders the coordinate in the notation at registry index i.
func (r *Registry) FormatAt(i int, c Coordinate) (string, error) {
	if i < 0 || i >= len(r.converters) {
		return "", fmt.Errorf("converter index %d out of range", i)
	}
	return r.converters[i].Format(c), nil
}

// FormatOne renders the coordinate in the named notation.
func (r *Registry) FormatOne(name string, c Coordinate) (string, error) {
	for _, conv := range r.converters {
		if conv.Name() == name {
			return conv.Format(c), nil
		}
	}
	return "", fmt.Errorf("unknown format %q", name)
}
