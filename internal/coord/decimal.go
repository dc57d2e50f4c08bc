package coord

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// Two signed decimal numbers separated by comma and/or whitespace.
	decimalDegreesRe = compilePair(`([+-]?\d+(?:\.\d+)?)`, `([+-]?\d+(?:\.\d+)?)`)

	// Unsigned decimal with a hemisphere suffix letter, WolframAlpha style.
	wolframRe = compilePair(`(\d+(?:\.\d+)?[EWew])`, `(\d+(?:\.\d+)?[NSns])`)
)

// NewDecimalDegrees returns the plain signed-decimal converter, the most
// permissive grammar in the registry and therefore always registered first.
func NewDecimalDegrees() Converter {
	return &pairConverter{
		name:    "Decimal Degrees",
		pattern: decimalDegreesRe,
		sep:     ", ",
		lon:     decimalCodec{},
		lat:     decimalCodec{},
	}
}

// NewWolframAlphaDegrees returns the letter-suffixed degree converter,
// e.g. "27.12345678W 109.23456789N".
func NewWolframAlphaDegrees() Converter {
	return &pairConverter{
		name:    "WolframAlpha Degrees",
		pattern: wolframRe,
		sep:     " ",
		lon:     hemisphereCodec{pos: 'E', neg: 'W'},
		lat:     hemisphereCodec{pos: 'N', neg: 'S'},
	}
}

// decimalCodec is a plain float component printed with 7 fractional digits.
type decimalCodec struct{}

func (decimalCodec) decode(atom string) (float64, error) {
	return strconv.ParseFloat(atom, 64)
}

func (decimalCodec) format(deg float64) string {
	return strconv.FormatFloat(deg, 'f', 7, 64)
}

// hemisphereCodec carries the sign in a trailing hemisphere letter: pos
// (E or N) keeps the magnitude, neg (W or S) negates it.
type hemisphereCodec struct {
	pos, neg byte
}

func (h hemisphereCodec) decode(atom string) (float64, error) {
	suffix := atom[len(atom)-1]
	v, err := strconv.ParseFloat(atom[:len(atom)-1], 64)
	if err != nil {
		return 0, err
	}
	if suffix == h.neg || suffix == h.neg+'a'-'A' {
		v = -v
	}
	return v, nil
}

func (h hemisphereCodec) format(deg float64) string {
	letter := h.pos
	if deg < 0 {
		deg = -deg
		letter = h.neg
	}
	return fmt.Sprintf("%.8f%c", deg, letter)
}

// compilePair builds the anchored two-atom envelope shared by the pair
// notations: optional surrounding space, comma and/or space between atoms.
func compilePair(lonAtom, latAtom string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + lonAtom + `\s*[,\s]\s*` + latAtom + `\s*$`)
}
