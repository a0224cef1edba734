package dataset

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"rgnmap/internal/rgn"
)

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPlacemark struct {
	Name        string    `xml:"name"`
	Data        []kmlData `xml:"ExtendedData>Data"`
	Coordinates string    `xml:"Point>coordinates"`
}

// ReadKML extracts every Placemark with a Point, at any depth, so VGs grouped
// in Folders are kept. Coordinates are "lon,lat[,alt]". Order, type and
// altitude come from ExtendedData; the coordinate altitude is the fallback.
// Placemarks without a Point are skipped.
func ReadKML(r io.Reader) ([]rgn.Record, error) {
	dec := xml.NewDecoder(r)
	var recs []rgn.Record
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, err
		}
		// only the first tuple of a Point is meaningful
		fields := strings.Fields(pm.Coordinates)
		if len(fields) == 0 {
			continue
		}
		tuple := strings.Split(fields[0], ",")
		rec := rgn.Record{
			Line:      len(recs) + 1,
			Name:      strings.TrimSpace(pm.Name),
			Longitude: strings.TrimSpace(tuple[0]),
		}
		if len(tuple) > 1 {
			rec.Latitude = strings.TrimSpace(tuple[1])
		}
		if len(tuple) > 2 {
			rec.Altitude = strings.TrimSpace(tuple[2])
		}
		for _, d := range pm.Data {
			v := strings.TrimSpace(d.Value)
			switch strings.ToLower(d.Name) {
			case "order":
				rec.Order = v
			case "type":
				rec.Type = v
			case "altitude", "alt", "elevation":
				rec.Altitude = v
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
