// Package dataset reads VG records from static files. It only extracts text
// fields; turning them into survey points is up to rgn.Parse.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rgnmap/internal/rgn"
)

// Format is a supported dataset encoding.
type Format string

const (
	FormatXML     Format = "xml"
	FormatCSV     Format = "csv"
	FormatGeoJSON Format = "geojson"
	FormatYAML    Format = "yaml"
	FormatKML     Format = "kml"
)

// ErrUnsupportedFormat is returned for files whose format cannot be inferred.
var ErrUnsupportedFormat = errors.New("dataset: unsupported format")

// FormatOf infers the format of path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".csv":
		return FormatCSV, nil
	case ".geojson", ".json":
		return FormatGeoJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".kml":
		return FormatKML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads every record of the file at path.
func Load(path string) ([]rgn.Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return recs, nil
}

// Read decodes every record in r.
func Read(r io.Reader, format Format) ([]rgn.Record, error) {
	switch format {
	case FormatXML:
		return ReadXML(r)
	case FormatCSV:
		return ReadCSV(r)
	case FormatGeoJSON:
		return ReadGeoJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatKML:
		return ReadKML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
