package amdb

import (
	"github.com/beetlebugorg/amdb/internal/parser"
	"github.com/paulmach/orb"
)

// toPoint converts a decoded coordinate to an orb point (x=longitude, y=latitude).
func toPoint(c parser.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// toLineString converts a path, keeping order and repeated points.
func toLineString(g parser.LineStringGeometry) orb.LineString {
	ls := make(orb.LineString, len(g.Coordinates))
	for i, c := range g.Coordinates {
		ls[i] = toPoint(c)
	}
	return ls
}

// toPolygon converts an area to a polygon made of its outer ring only.
//
// Holes are dropped. The outer ring is closed if the document left it open;
// its winding is left as written.
func toPolygon(g parser.PolygonGeometry) orb.Polygon {
	outer := g.Coordinates[0]
	ring := make(orb.Ring, len(outer))
	for i, c := range outer {
		ring[i] = toPoint(c)
	}
	return orb.Polygon{ensureRingClosure(ring)}
}

// ensureRingClosure ensures a ring is closed (first point == last)
func ensureRingClosure(ring orb.Ring) orb.Ring {
	if len(ring) < 3 {
		return ring // Not enough points for an area
	}
	if ring[0] == ring[len(ring)-1] {
		return ring
	}
	return append(ring, ring[0])
}
