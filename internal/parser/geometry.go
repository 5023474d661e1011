package parser

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// GeometryType represents the shape kind of a raw feature geometry.
type GeometryType int

const (
	// GeometryTypePoint represents a single coordinate.
	GeometryTypePoint GeometryType = iota + 1

	// GeometryTypeLineString represents an ordered path of coordinates.
	GeometryTypeLineString

	// GeometryTypePolygon represents an area bounded by linear rings.
	GeometryTypePolygon
)

// String returns the GeoJSON type tag of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Coordinate is a geographic position decoded from a [longitude, latitude] pair.
//
// The document stores longitude first; UnmarshalJSON swaps the pair so Lat and
// Lon always hold what their names say.
type Coordinate struct {
	Lat float64
	Lon float64
}

// UnmarshalJSON decodes a [lon, lat] or [lon, lat, alt] array. Altitude is ignored.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}
	if len(v) < 2 || len(v) > 3 {
		return &ErrInvalidGeometry{
			Type:   GeometryTypePoint,
			Reason: fmt.Sprintf("coordinate must have 2 or 3 values [lon, lat], got %d", len(v)),
		}
	}
	c.Lat = v[1]
	c.Lon = v[0]
	return nil
}

// Equal reports whether both components have the same bit pattern.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Key() == other.Key()
}

// Key returns the bit patterns of both components, usable as a map key.
// Unlike ==, it distinguishes 0 from -0 and treats identical NaNs as equal.
func (c Coordinate) Key() [2]uint64 {
	return [2]uint64{math.Float64bits(c.Lat), math.Float64bits(c.Lon)}
}

// rawGeometry is the undecoded {type, coordinates} object of a feature
type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (g rawGeometry) hasCoordinates() bool {
	return len(g.Coordinates) > 0 && string(g.Coordinates) != "null"
}

// PointGeometry holds a single coordinate.
type PointGeometry struct {
	Type        string
	Coordinates Coordinate
}

// LineStringGeometry holds an ordered sequence of coordinates.
type LineStringGeometry struct {
	Type        string
	Coordinates []Coordinate
}

// PolygonGeometry holds linear rings; the first ring is the outer boundary,
// later rings are holes.
type PolygonGeometry struct {
	Type        string
	Coordinates [][]Coordinate
}

func decodePointGeometry(raw rawGeometry) (PointGeometry, error) {
	g := PointGeometry{Type: raw.Type}
	if !raw.hasCoordinates() {
		return g, &ErrInvalidGeometry{Type: GeometryTypePoint, Reason: "missing coordinates"}
	}
	if err := json.Unmarshal(raw.Coordinates, &g.Coordinates); err != nil {
		return g, wrapGeometryError(GeometryTypePoint, err)
	}
	return g, nil
}

func decodeLineStringGeometry(raw rawGeometry) (LineStringGeometry, error) {
	g := LineStringGeometry{Type: raw.Type}
	if !raw.hasCoordinates() {
		return g, &ErrInvalidGeometry{Type: GeometryTypeLineString, Reason: "missing coordinates"}
	}
	if err := json.Unmarshal(raw.Coordinates, &g.Coordinates); err != nil {
		return g, wrapGeometryError(GeometryTypeLineString, err)
	}
	return g, nil
}

func decodePolygonGeometry(raw rawGeometry) (PolygonGeometry, error) {
	g := PolygonGeometry{Type: raw.Type}
	if !raw.hasCoordinates() {
		return g, &ErrInvalidGeometry{Type: GeometryTypePolygon, Reason: "missing coordinates"}
	}
	if err := json.Unmarshal(raw.Coordinates, &g.Coordinates); err != nil {
		return g, wrapGeometryError(GeometryTypePolygon, err)
	}
	// The outer boundary is mandatory regardless of validation settings.
	if len(g.Coordinates) == 0 {
		return g, &ErrInvalidGeometry{Type: GeometryTypePolygon, Reason: "polygon has no rings"}
	}
	return g, nil
}

// wrapGeometryError keeps an ErrInvalidGeometry from a coordinate as-is and
// wraps JSON shape mismatches into one.
func wrapGeometryError(t GeometryType, err error) error {
	var ge *ErrInvalidGeometry
	if errors.As(err, &ge) {
		return &ErrInvalidGeometry{Type: t, Reason: ge.Reason}
	}
	return &ErrInvalidGeometry{Type: t, Reason: err.Error()}
}
