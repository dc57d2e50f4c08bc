package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Parcel ID packs each component into a 32-bit word built on the same
// 1/256-arc-second grid as the fixed-point notations:
//
//	bit 31    hemisphere flag, set for West longitude / South latitude
//	bits 3-30 scaled magnitude, its low byte zeroed, shifted left 3
//	bits 0-7  "extended area" sub-field carrying auxiliary precision
//
// Encoding always emits a zero extended-area field; decoding honors a
// non-zero one by re-ORing it into the unshifted magnitude.
const (
	parcelHemisphere = 1 << 31
	parcelExtMask    = 0xff
)

var parcelRe = regexp.MustCompile(`(?i)^\s*PID\s+(?:0x)?([0-9a-f]+)\s*[,\s]\s*(?:0x)?([0-9a-f]+)\s*$`)

// NewParcelID returns the bit-packed parcel converter,
// e.g. "PID 80000000, 4F1A0000".
func NewParcelID() Converter {
	return &pairConverter{
		name:    "Parcel ID",
		pattern: parcelRe,
		prefix:  "PID ",
		sep:     ", ",
		lon:     parcelCodec{},
		lat:     parcelCodec{},
	}
}

type parcelCodec struct{}

func (parcelCodec) decode(atom string) (float64, error) {
	x, err := strconv.ParseUint(atom, 16, 32)
	if err != nil {
		return 0, err
	}

	p := uint32(x)
	neg := p&parcelHemisphere != 0
	p &^= parcelHemisphere

	var m uint32
	if ext := p & parcelExtMask; ext != 0 {
		m = (p>>3)&^parcelExtMask | ext
	} else {
		m = p >> 3
	}

	deg := float64(m) / fixedScale
	if neg {
		deg = -deg
	}
	return deg, nil
}

func (parcelCodec) format(deg float64) string {
	m := uint32(int64(math.Abs(deg)*fixedScale + 0.5))
	p := (m &^ parcelExtMask) << 3
	if math.Signbit(deg) {
		p |= parcelHemisphere
	}
	return fmt.Sprintf("%X", p)
}
