package dataset

import (
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"rgnmap/internal/rgn"
)

// ReadGeoJSON reads a FeatureCollection of Point features. The position comes
// from the geometry; name, order, type and altitude from the properties.
func ReadGeoJSON(r io.Reader) ([]rgn.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	recs := make([]rgn.Record, 0, len(fc.Features))
	for i, f := range fc.Features {
		rec := rgn.Record{
			Line:     i + 1,
			Name:     text(f.Properties["name"]),
			Order:    text(f.Properties["order"]),
			Type:     text(f.Properties["type"]),
			Altitude: firstText(f.Properties, "altitude", "alt", "elevation"),
		}
		switch g := f.Geometry.(type) {
		case nil:
			// left without coordinates; rgn.Parse reports it
		case orb.Point:
			rec.Longitude = text(g.Lon())
			rec.Latitude = text(g.Lat())
		default:
			return nil, fmt.Errorf("feature %d: %s geometry, want Point", i+1, g.GeoJSONType())
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func firstText(props geojson.Properties, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k]; ok && v != nil {
			return text(v)
		}
	}
	return ""
}

// text renders a decoded scalar the way it would appear in an XML dataset.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
