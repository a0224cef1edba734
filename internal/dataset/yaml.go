package dataset

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"rgnmap/internal/rgn"
)

type yamlDoc struct {
	VGs []map[string]any `yaml:"vgs"`
}

// ReadYAML reads a document with a top-level "vgs" list of mappings keyed
// like the XML elements.
func ReadYAML(r io.Reader) ([]rgn.Record, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	recs := make([]rgn.Record, 0, len(doc.VGs))
	for i, m := range doc.VGs {
		recs = append(recs, rgn.Record{
			Line:      i + 1,
			Name:      text(m["name"]),
			Order:     text(m["order"]),
			Type:      text(m["type"]),
			Altitude:  text(m["altitude"]),
			Latitude:  text(m["latitude"]),
			Longitude: text(m["longitude"]),
		})
	}
	return recs, nil
}
