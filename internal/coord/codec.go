package coord

import "regexp"

// componentCodec converts a single coordinate component between its textual
// atom and degrees. Longitude and latitude may use distinct codecs when the
// notation treats them differently (range thresholds, hemisphere letters).
type componentCodec interface {
	decode(atom string) (float64, error)
	format(deg float64) string
}

// pairConverter is the shared shape of every two-component notation: an
// envelope regexp with exactly two capture groups (longitude atom first,
// latitude atom second) plus one codec per component.
type pairConverter struct {
	name    string
	pattern *regexp.Regexp
	prefix  string // literal before the first formatted atom
	sep     string // literal between the formatted atoms
	lon     componentCodec
	lat     componentCodec
}

func (p *pairConverter) Name() string { return p.name }

func (p *pairConverter) Parse(text string) (Coordinate, error) {
	m := p.pattern.FindStringSubmatch(text)
	if m == nil {
		return Coordinate{}, ErrRejected
	}

	lon, err := p.lon.decode(m[1])
	if err != nil {
		return Coordinate{}, ErrRejected
	}
	lat, err := p.lat.decode(m[2])
	if err != nil {
		return Coordinate{}, ErrRejected
	}

	return Coordinate{Longitude: lon, Latitude: lat}, nil
}

func (p *pairConverter) Format(c Coordinate) string {
	return p.prefix + p.lon.format(c.Longitude) + p.sep + p.lat.format(c.Latitude)
}
