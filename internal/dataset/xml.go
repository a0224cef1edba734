package dataset

import (
	"encoding/xml"
	"errors"
	"io"

	"rgnmap/internal/rgn"
)

type xmlVG struct {
	Name      string `xml:"name"`
	Order     string `xml:"order"`
	Type      string `xml:"type"`
	Altitude  string `xml:"altitude"`
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

// ReadXML extracts every <vg> element, at any depth, with its name, order,
// type, altitude, latitude and longitude children.
func ReadXML(r io.Reader) ([]rgn.Record, error) {
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
		if !ok || se.Name.Local != "vg" {
			continue
		}
		var vg xmlVG
		if err := dec.DecodeElement(&vg, &se); err != nil {
			return nil, err
		}
		recs = append(recs, rgn.Record{
			Line:      len(recs) + 1,
			Name:      vg.Name,
			Order:     vg.Order,
			Type:      vg.Type,
			Altitude:  vg.Altitude,
			Latitude:  vg.Latitude,
			Longitude: vg.Longitude,
		})
	}
	return recs, nil
}
