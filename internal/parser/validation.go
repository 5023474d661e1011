package parser

import (
	"fmt"
)

// ValidateCoordinate validates a single coordinate pair
// Coordinates must be within valid WGS-84 geographic bounds
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidatePoint checks the type tag and coordinate range of a point geometry.
func ValidatePoint(g PointGeometry) error {
	if err := validateTypeTag(GeometryTypePoint, g.Type); err != nil {
		return err
	}
	return validateCoordinates(GeometryTypePoint, []Coordinate{g.Coordinates})
}

// ValidateLineString checks the type tag, length and coordinate range of a path.
func ValidateLineString(g LineStringGeometry) error {
	if err := validateTypeTag(GeometryTypeLineString, g.Type); err != nil {
		return err
	}
	if len(g.Coordinates) < 2 {
		return &ErrInvalidGeometry{
			Type:   GeometryTypeLineString,
			Reason: fmt.Sprintf("path needs at least 2 coordinates, got %d", len(g.Coordinates)),
		}
	}
	return validateCoordinates(GeometryTypeLineString, g.Coordinates)
}

// ValidatePolygon checks the type tag and the coordinate range of every ring.
// Ring topology (simplicity, self-intersection, winding) is not checked.
func ValidatePolygon(g PolygonGeometry) error {
	if err := validateTypeTag(GeometryTypePolygon, g.Type); err != nil {
		return err
	}
	for i, ring := range g.Coordinates {
		if len(ring) == 0 {
			return &ErrInvalidGeometry{
				Type:   GeometryTypePolygon,
				Reason: fmt.Sprintf("ring %d is empty", i),
			}
		}
		if err := validateCoordinates(GeometryTypePolygon, ring); err != nil {
			return err
		}
	}
	return nil
}

func validateTypeTag(want GeometryType, got string) error {
	if got != want.String() {
		return &ErrInvalidGeometry{
			Type:   want,
			Reason: fmt.Sprintf("geometry type %q does not match group shape", got),
		}
	}
	return nil
}

func validateCoordinates(t GeometryType, coords []Coordinate) error {
	for i, c := range coords {
		if err := ValidateCoordinate(c.Lat, c.Lon); err != nil {
			return &ErrInvalidGeometry{
				Type:   t,
				Reason: fmt.Sprintf("coordinate %d invalid: %v", i, err),
			}
		}
	}
	return nil
}
