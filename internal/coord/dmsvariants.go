package coord

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// LFV wire form, latitude first, seconds split into whole and fraction:
	// "S27 07 32 460 W109 16 36 880".
	lfvRe = regexp.MustCompile(
		`^([NSns]) ?(\d+) (\d+) (\d+) (\d+) ([EWew]) ?(\d+) (\d+) (\d+) (\d+)$`)

	// NaviDisplay wire form with Unicode glyphs and no inner spaces:
	// "S27°07′32.5″\tW109°16′36.9″".
	naviRe = regexp.MustCompile(
		`^\s*([NSns])(\d+)°(\d+)′(\d+(?:\.\d+)?)″[\s,]+([EWew])(\d+)°(\d+)′(\d+(?:\.\d+)?)″\s*$`)
)

// DMSLFV is the fixed flight-plan style notation: latitude first, front
// hemisphere letters, seconds carried as "whole fraction" integer pairs.
type DMSLFV struct{}

// NewDMSLFV returns the LFV notation converter.
func NewDMSLFV() Converter { return DMSLFV{} }

func (DMSLFV) Name() string { return "DMS LFV" }

func (DMSLFV) Parse(text string) (Coordinate, error) {
	m := lfvRe.FindStringSubmatch(normalizeDMS(text))
	if m == nil {
		return Coordinate{}, ErrRejected
	}

	lat := dmsAngle(m[1], m[2], m[3], m[4]+" "+m[5])
	lon := dmsAngle(m[6], m[7], m[8], m[9]+" "+m[10])
	return Coordinate{Longitude: lon, Latitude: lat}, nil
}

func (DMSLFV) Format(c Coordinate) string {
	lat := splitDMS(c.Latitude)
	lon := splitDMS(c.Longitude)
	return fmt.Sprintf("%c%d %02d %s %c%d %02d %s",
		dmsFlag(lat.neg, 'N', 'S'), lat.deg, lat.min, lfvSeconds(lat.sec),
		dmsFlag(lon.neg, 'E', 'W'), lon.deg, lon.min, lfvSeconds(lon.sec))
}

// lfvSeconds renders seconds to three decimals with the point replaced by a
// space, the notation's "whole fraction" pair.
func lfvSeconds(sec float64) string {
	return strings.Replace(fmt.Sprintf("%.3f", sec), ".", " ", 1)
}

// DMSNaviDisplay mirrors the receiver's on-screen notation: degree, minute
// and second glyphs, latitude first, tab-separated pair.
type DMSNaviDisplay struct{}

// NewDMSNaviDisplay returns the NaviDisplay notation converter.
func NewDMSNaviDisplay() Converter { return DMSNaviDisplay{} }

func (DMSNaviDisplay) Name() string { return "DMS NaviDisplay" }

func (DMSNaviDisplay) Parse(text string) (Coordinate, error) {
	m := naviRe.FindStringSubmatch(text)
	if m == nil {
		return Coordinate{}, ErrRejected
	}

	lat := dmsAngle(m[1], m[2], m[3], m[4])
	lon := dmsAngle(m[5], m[6], m[7], m[8])
	return Coordinate{Longitude: lon, Latitude: lat}, nil
}

func (DMSNaviDisplay) Format(c Coordinate) string {
	lat := splitDMS(c.Latitude)
	lon := splitDMS(c.Longitude)
	return fmt.Sprintf("%c%d°%02d′%04.1f″\t%c%d°%02d′%04.1f″",
		dmsFlag(lat.neg, 'N', 'S'), lat.deg, lat.min, lat.sec,
		dmsFlag(lon.neg, 'E', 'W'), lon.deg, lon.min, lon.sec)
}
