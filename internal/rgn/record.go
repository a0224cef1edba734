package rgn

import (
	"strconv"
	"strings"

	"rgnmap/internal/geodesy"
)

// Record is one raw VG as read from a dataset. Every field is the source text;
// an empty field is absent. Altitude is the only optional field.
type Record struct {
	Line      int // 1-based position in the source, 0 if unknown
	Name      string
	Order     string
	Type      string
	Altitude  string
	Latitude  string
	Longitude string
}

// altitude placeholders used by surveys for "not measured"
var unknownAltitudeText = map[string]bool{
	"":    true,
	"-":   true,
	"nd":  true,
	"n/a": true,
	"na":  true,
}

// point converts r into a SurveyPoint.
func (r Record) point() (*SurveyPoint, error) {
	name := strings.TrimSpace(r.Name)
	fail := func(field, reason string, err error) error {
		return &DataFormatError{Line: r.Line, Name: name, Field: field, Reason: reason, Err: err}
	}
	if name == "" {
		return nil, fail("name", "missing", nil)
	}

	orderText := strings.TrimSpace(r.Order)
	if orderText == "" {
		return nil, fail("order", "missing", nil)
	}
	n, err := strconv.Atoi(orderText)
	if err != nil {
		return nil, fail("order", "not an integer", err)
	}
	order := Order(n)
	if !order.Valid() {
		return nil, fail("order", "out of range", &InvalidOrderError{Order: n})
	}

	lat, reason := parseCoordinate(r.Latitude)
	if reason != "" {
		return nil, fail("latitude", reason, nil)
	}
	lon, reason := parseCoordinate(r.Longitude)
	if reason != "" {
		return nil, fail("longitude", reason, nil)
	}
	pos, err := geodesy.NewPoint(lat, lon)
	if err != nil {
		return nil, fail("position", "out of range", err)
	}

	alt := UnknownAltitude()
	altText := strings.TrimSpace(r.Altitude)
	if !unknownAltitudeText[strings.ToLower(altText)] {
		v, err := strconv.ParseFloat(altText, 64)
		if err != nil {
			return nil, fail("altitude", "not a number", err)
		}
		alt = v
	}

	return &SurveyPoint{
		Point:    pos,
		Name:     name,
		Order:    order,
		Type:     strings.TrimSpace(r.Type),
		Altitude: alt,
	}, nil
}

// parseCoordinate returns the value of s, or a reason it has none.
func parseCoordinate(s string) (float64, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "missing"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "not a number"
	}
	return v, ""
}
