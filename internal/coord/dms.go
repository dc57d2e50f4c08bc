package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Regexp fragments for the normalized degree/minute/second grammars. Seconds
// accept an embedded space standing in for the decimal point ("36 88" means
// 36.88), a quirk of some receiver displays.
const (
	dmsInt = `(\d+)`
	dmsSec = `(\d+(?:[. ]\d+)?)`
	dmsEW  = `([EWew+-])`
	dmsNS  = `([NSns+-])`
)

// The four physical grammar variants of the generic notation, tried in this
// order: front-flag longitude-first, front-flag latitude-first, then the
// trailing-flag twins (letters only, a trailing bare sign is meaningless).
var dmsVariants = []dmsVariant{
	{lonFirst: true, re: regexp.MustCompile(
		`^` + dmsEW + ` ?` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ` + dmsNS + ` ?` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + `$`)},
	{lonFirst: false, re: regexp.MustCompile(
		`^` + dmsNS + ` ?` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ` + dmsEW + ` ?` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + `$`)},
	{lonFirst: true, trailing: true, re: regexp.MustCompile(
		`^` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ?([EWew]) ` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ?([NSns])$`)},
	{lonFirst: false, trailing: true, re: regexp.MustCompile(
		`^` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ?([NSns]) ` + dmsInt + ` ` + dmsInt + ` ` + dmsSec + ` ?([EWew])$`)},
}

type dmsVariant struct {
	re       *regexp.Regexp
	lonFirst bool
	trailing bool
}

// normalizeDMS collapses everything that is not a digit, a decimal point, or
// a sign/hemisphere letter into single separating spaces, so that arbitrary
// punctuation (°, ', ", commas) between fields is tolerated. A hemisphere
// letter adjacent to another letter is treated as ordinary text and dropped,
// which keeps words like "North" from leaking an N into the grammar.
func normalizeDMS(text string) string {
	runes := []rune(text)
	var b strings.Builder
	pending := false

	for i, r := range runes {
		keep := unicode.IsDigit(r) || r == '.'
		switch r {
		case 'N', 'S', 'E', 'W', 'n', 's', 'e', 'w', '+', '-':
			prevLetter := i > 0 && unicode.IsLetter(runes[i-1])
			nextLetter := i+1 < len(runes) && unicode.IsLetter(runes[i+1])
			keep = !prevLetter && !nextLetter
		}

		if !keep {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// dmsAngle assembles degrees from a matched triple, negating for the W, S
// and bare minus flags.
func dmsAngle(flag, d, m, s string) float64 {
	deg, _ := strconv.ParseFloat(d, 64)
	min, _ := strconv.ParseFloat(m, 64)
	sec, _ := strconv.ParseFloat(strings.Replace(s, " ", ".", 1), 64)

	angle := deg + min/60 + sec/3600
	switch flag {
	case "W", "w", "S", "s", "-":
		angle = -angle
	}
	return angle
}

// dmsParts is a degree value decomposed for display: truncated whole degrees
// and minutes plus the fractional-second remainder.
type dmsParts struct {
	neg bool
	deg int
	min int
	sec float64
}

// splitDMS decomposes |v| with truncation for degrees and minutes. Minutes
// are rounded to 8 decimal places before truncation so that values sitting
// one float ulp below a whole minute do not lose it; a seconds remainder
// pushed negative by that rounding is clamped to zero.
func splitDMS(v float64) dmsParts {
	p := dmsParts{neg: v < 0}
	a := math.Abs(v)

	p.deg = int(a)
	minutes := (a - float64(p.deg)) * 60
	p.min = int(math.Round(minutes*1e8) / 1e8)
	p.sec = (minutes - float64(p.min)) * 60
	if p.sec < 0 {
		p.sec = 0
	}
	return p
}

func dmsFlag(neg bool, pos, negLetter byte) byte {
	if neg {
		return negLetter
	}
	return pos
}

// DMSGeneric accepts the four punctuation-tolerant degree/minute/second
// grammars and formats the front-flagged, longitude-first rendition.
type DMSGeneric struct{}

// NewDMSGeneric returns the generic degree/minute/second converter.
func NewDMSGeneric() Converter { return DMSGeneric{} }

func (DMSGeneric) Name() string { return "DMS" }

func (DMSGeneric) Parse(text string) (Coordinate, error) {
	norm := normalizeDMS(text)

	for _, v := range dmsVariants {
		m := v.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}

		var first, second float64
		if v.trailing {
			first = dmsAngle(m[4], m[1], m[2], m[3])
			second = dmsAngle(m[8], m[5], m[6], m[7])
		} else {
			first = dmsAngle(m[1], m[2], m[3], m[4])
			second = dmsAngle(m[5], m[6], m[7], m[8])
		}

		if v.lonFirst {
			return Coordinate{Longitude: first, Latitude: second}, nil
		}
		return Coordinate{Longitude: second, Latitude: first}, nil
	}

	return Coordinate{}, ErrRejected
}

func (DMSGeneric) Format(c Coordinate) string {
	lon := splitDMS(c.Longitude)
	lat := splitDMS(c.Latitude)
	return fmt.Sprintf(`%c%d %02d'%.1f", %c%d %02d'%.1f"`,
		dmsFlag(lon.neg, 'E', 'W'), lon.deg, lon.min, lon.sec,
		dmsFlag(lat.neg, 'N', 'S'), lat.deg, lat.min, lat.sec)
}
