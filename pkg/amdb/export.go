package amdb

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders every element of the airport as a GeoJSON
// feature in the order of Elements. Each feature carries "layer" and "id"
// properties. Coordinates are written in GeoJSON order (longitude, latitude).
func (a *Airport) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range a.Elements() {
		fc.Append(elementFeature(e))
	}
	return fc
}

func elementFeature(e Element) *geojson.Feature {
	f := geojson.NewFeature(e.Shape())
	f.Properties["layer"] = e.Layer().String()
	f.Properties["id"] = e.ElementID()
	return f
}
