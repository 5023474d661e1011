package amdb

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollection(t *testing.T) {
	airport, err := ParseAirport(fixture(t))
	require.NoError(t, err)

	fc := airport.FeatureCollection()
	require.Len(t, fc.Features, airport.Len())

	first := fc.Features[0]
	assert.Equal(t, "aerodromereferencepoint", first.Properties["layer"])
	assert.Equal(t, uint64(1), first.Properties["id"])
	assert.Equal(t, orb.Point{-80.0, 40.0}, first.Geometry)

	last := fc.Features[len(fc.Features)-1]
	assert.Equal(t, "water", last.Properties["layer"])
}

func TestFeatureCollectionRoundTrip(t *testing.T) {
	airport, err := ParseAirport(fixture(t))
	require.NoError(t, err)

	data, err := airport.FeatureCollection().MarshalJSON()
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, airport.Len())

	// Holding position 70 keeps GeoJSON axis order on the way out.
	var found bool
	for _, f := range fc.Features {
		if f.Properties.MustString("layer") == "taxiwayholdingposition" && f.Properties.MustInt("id") == 70 {
			found = true
			assert.Equal(t, orb.LineString{{-80.0005, 40.0}, {-79.9995, 40.0}}, f.Geometry)
		}
	}
	assert.True(t, found)
}
