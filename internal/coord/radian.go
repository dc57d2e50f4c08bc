package coord

import (
	"fmt"
	"math"
)

// Radian rescales each component through a quarter turn (acos(0)/90) and
// mirrors the seven-decimal layout of the decimal degree notation. This is a
// display-only transform and never accepts input.
type Radian struct{}

// NewRadian returns the render-only radian converter.
func NewRadian() Converter { return Radian{} }

func (Radian) Name() string { return "Radian" }

// Parse always rejects: the radian notation only renders.
func (Radian) Parse(string) (Coordinate, error) {
	return Coordinate{}, ErrRejected
}

func (Radian) Format(c Coordinate) string {
	quarter := math.Acos(0)
	return fmt.Sprintf("%.7f, %.7f", c.Longitude/90*quarter, c.Latitude/90*quarter)
}
