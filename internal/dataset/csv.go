package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"rgnmap/internal/rgn"
)

// ReadCSV reads a CSV with a header row. Column detection is case-insensitive:
// name, order, type, altitude|alt|elevation, lat|latitude|y and
// lon|lng|long|longitude|x. Type and altitude columns are optional. Without
// lat/lon columns a wkt|geometry|geom column holding a POINT is used.
func ReadCSV(r io.Reader) ([]rgn.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("csv: missing header")
	}
	idx := map[string]int{"name": -1, "order": -1, "type": -1, "altitude": -1, "latitude": -1, "longitude": -1, "wkt": -1}
	for i, h := range rows[0] {
		var key string
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			key = "name"
		case "order":
			key = "order"
		case "type":
			key = "type"
		case "altitude", "alt", "elevation":
			key = "altitude"
		case "lat", "latitude", "y":
			key = "latitude"
		case "lon", "lng", "long", "longitude", "x":
			key = "longitude"
		case "wkt", "geometry", "geom":
			key = "wkt"
		default:
			continue
		}
		if idx[key] == -1 {
			idx[key] = i
		}
	}
	required := []string{"name", "order", "latitude", "longitude"}
	useWKT := idx["wkt"] != -1 && (idx["latitude"] == -1 || idx["longitude"] == -1)
	if useWKT {
		required = required[:2]
	}
	var missing []string
	for _, k := range required {
		if idx[k] == -1 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv: columns not found: %s", strings.Join(missing, ", "))
	}
	cell := func(row []string, key string) string {
		i := idx[key]
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
	recs := make([]rgn.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		rec := rgn.Record{
			Line:      i + 2,
			Name:      cell(row, "name"),
			Order:     cell(row, "order"),
			Type:      cell(row, "type"),
			Altitude:  cell(row, "altitude"),
			Latitude:  cell(row, "latitude"),
			Longitude: cell(row, "longitude"),
		}
		if useWKT {
			if err := setWKTPosition(&rec, cell(row, "wkt")); err != nil {
				return nil, err
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// setWKTPosition fills the position of rec from a WKT POINT. An empty cell
// leaves it blank for rgn.Parse to report.
func setWKTPosition(rec *rgn.Record, cell string) error {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	g, err := wkt.Unmarshal(cell)
	if err != nil {
		return &rgn.DataFormatError{Line: rec.Line, Name: rec.Name, Field: "wkt", Reason: "malformed", Err: err}
	}
	p, ok := g.(orb.Point)
	if !ok {
		return &rgn.DataFormatError{Line: rec.Line, Name: rec.Name, Field: "wkt", Reason: g.GeoJSONType() + " geometry, want Point"}
	}
	rec.Longitude = text(p.Lon())
	rec.Latitude = text(p.Lat())
	return nil
}
