package coord

import (
	"math"
	"strconv"
)

// Fixed-point notations encode degrees in units of 1/256 arc-second inside a
// 32-bit word. The top half of the range holds negative degrees in two's
// complement; the split point is the encoded magnitude of 180° (longitude)
// or 90° (latitude).
const (
	fixedScale = 60 * 60 * 256 // units per degree

	lonFixedLimit = 0x9e34000 // 180 * fixedScale
	latFixedLimit = 0x4f1a000 // 90 * fixedScale

	fixedWrap = 1 << 32
)

var (
	hexPairRe  = compilePair(`([0-9a-fA-F]+)`, `([0-9a-fA-F]+)`)
	hexCPairRe = compilePair(`0[xX]([0-9a-fA-F]+)`, `0[xX]([0-9a-fA-F]+)`)
	decFixedRe = compilePair(`[Dd] ?([+-]?\d+)`, `[Dd] ?([+-]?\d+)`)
)

// NewHexFixedPoint returns the bare hexadecimal fixed-point converter,
// e.g. "9e34000, 4f1a000".
func NewHexFixedPoint() Converter {
	return &pairConverter{
		name:    "Hex Fixed-Point",
		pattern: hexPairRe,
		sep:     ", ",
		lon:     hexFixedCodec{limit: lonFixedLimit},
		lat:     hexFixedCodec{limit: latFixedLimit},
	}
}

// NewHexFixedPointC returns the C-literal variant: same numbers, mandatory
// 0x prefix on input and output.
func NewHexFixedPointC() Converter {
	return &pairConverter{
		name:    "Hex Fixed-Point (C)",
		pattern: hexCPairRe,
		sep:     ", ",
		lon:     hexFixedCodec{limit: lonFixedLimit, prefix: "0x"},
		lat:     hexFixedCodec{limit: latFixedLimit, prefix: "0x"},
	}
}

// NewDecimalFixedPoint returns the "D"-marked decimal rendition of the same
// fixed-point word, e.g. "D 123456, D 4294312975". Input may carry a signed
// decimal directly; output always goes through the two's-complement wrap, so
// negative degrees print as 2^32+y rather than a signed literal.
func NewDecimalFixedPoint() Converter {
	return &pairConverter{
		name:    "Decimal Fixed-Point",
		pattern: decFixedRe,
		sep:     ", ",
		lon:     decFixedCodec{limit: lonFixedLimit},
		lat:     decFixedCodec{limit: latFixedLimit},
	}
}

// unsplitFixed maps a raw fixed-point word to degrees: values at or below
// the component's 180°/90° magnitude are non-negative, the rest are the
// two's-complement top half.
func unsplitFixed(v int64, limit int64) float64 {
	if v <= limit {
		return float64(v) / fixedScale
	}
	return float64(v-fixedWrap) / fixedScale
}

// wrapFixed folds a scaled integer into the unsigned 32-bit word, wrapping
// negatives (and any overflow) modulo 2^32.
func wrapFixed(y int64) uint64 {
	return uint64(uint32(y))
}

type hexFixedCodec struct {
	limit  int64
	prefix string
}

func (h hexFixedCodec) decode(atom string) (float64, error) {
	x, err := strconv.ParseUint(atom, 16, 32)
	if err != nil {
		return 0, err
	}
	return unsplitFixed(int64(x), h.limit), nil
}

func (h hexFixedCodec) format(deg float64) string {
	// Truncation toward zero, not rounding: the hex notations keep whatever
	// fits below the 1/256-arc-second grid.
	y := int64(deg * fixedScale)
	return h.prefix + strconv.FormatUint(wrapFixed(y), 16)
}

type decFixedCodec struct {
	limit int64
}

func (d decFixedCodec) decode(atom string) (float64, error) {
	v, err := strconv.ParseInt(atom, 10, 64)
	if err != nil {
		return 0, err
	}
	return unsplitFixed(v, d.limit), nil
}

func (d decFixedCodec) format(deg float64) string {
	// Round half up: keeps a scaled -0.5 at zero instead of wrapping it to
	// the top of the 32-bit range.
	y := int64(math.Floor(deg*fixedScale + 0.5))
	return "D " + strconv.FormatUint(wrapFixed(y), 10)
}
