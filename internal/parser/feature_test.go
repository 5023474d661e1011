package parser

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePointFeature(t *testing.T) {
	data := json.RawMessage(`{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [-80.0, 40.0]},
		"properties": {"id": 1, "idarpt": "KXYZ", "iata": "XYZ", "name": "Example", "elev": 100.0}
	}`)

	f, err := DecodePointFeature[AerodromeReferencePoint](data, DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, Coordinate{Lat: 40.0, Lon: -80.0}, f.Geometry.Coordinates)
	assert.Equal(t, AerodromeReferencePoint{ID: 1, IDArpt: "KXYZ", IATA: "XYZ", Name: "Example", Elev: 100.0}, f.Properties)
}

func TestDecodeLineStringFeature(t *testing.T) {
	data := json.RawMessage(`{
		"geometry": {"type": "LineString", "coordinates": [[-80.0, 40.0], [-79.9, 40.1]]},
		"properties": {"id": 70, "idp": "RWY1.RWY2", "idlin": null, "status": 1, "catstop": 2}
	}`)

	f, err := DecodeLineStringFeature[TaxiwayHoldingPosition](data, DefaultParseOptions())
	require.NoError(t, err)

	require.Len(t, f.Geometry.Coordinates, 2)
	assert.Equal(t, Coordinate{Lat: 40.1, Lon: -79.9}, f.Geometry.Coordinates[1])
	require.NotNil(t, f.Properties.IDP)
	assert.Equal(t, "RWY1.RWY2", *f.Properties.IDP)
	assert.Nil(t, f.Properties.IDLin)
	assert.Equal(t, int32(2), f.Properties.CatStop)
}

func TestDecodePolygonFeature(t *testing.T) {
	data := json.RawMessage(`{
		"geometry": {"type": "Polygon", "coordinates": [[[-80, 40], [-79, 40], [-79, 41], [-80, 40]]]},
		"properties": {"id": 10, "gsurftyp": 99, "status": 0}
	}`)

	f, err := DecodePolygonFeature[ApronElement](data, DefaultParseOptions())
	require.NoError(t, err)

	assert.Len(t, f.Geometry.Coordinates[0], 4)
	assert.Nil(t, f.Properties.IDApron, "optional property may be absent")
	assert.Equal(t, int32(99), f.Properties.GSurfTyp)
}

func TestDecodeFeatureErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, err error)
	}{
		{
			name: "not an object",
			data: `[1, 2]`,
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "feature")
			},
		},
		{
			name: "no geometry",
			data: `{"properties": {"id": 1, "idthr": "09"}}`,
			check: func(t *testing.T, err error) {
				var gerr *ErrInvalidGeometry
				assert.ErrorAs(t, err, &gerr)
			},
		},
		{
			name: "null properties",
			data: `{"geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1]]]}, "properties": null}`,
			check: func(t *testing.T, err error) {
				var perr *ErrMissingProperty
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, "properties", perr.Property)
			},
		},
		{
			name: "missing required property",
			data: `{"geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1]]]}, "properties": {"id": 1}}`,
			check: func(t *testing.T, err error) {
				var perr *ErrMissingProperty
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, "idthr", perr.Property)
			},
		},
		{
			name: "wrong property type",
			data: `{"geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1]]]}, "properties": {"id": "one", "idthr": "09"}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "properties")
			},
		},
		{
			name: "wrong geometry type tag",
			data: `{"geometry": {"type": "MultiPolygon", "coordinates": [[[0, 0], [1, 0], [1, 1]]]}, "properties": {"id": 1, "idthr": "09"}}`,
			check: func(t *testing.T, err error) {
				var gerr *ErrInvalidGeometry
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, GeometryTypePolygon, gerr.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePolygonFeature[Blastpad](json.RawMessage(tt.data), DefaultParseOptions())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDecodeFeatureWithoutValidation(t *testing.T) {
	data := json.RawMessage(`{
		"geometry": {"type": "MultiLineString", "coordinates": [[-80, 95]]},
		"properties": {"id": 43, "idlin": "A"}
	}`)

	_, err := DecodeLineStringFeature[TaxiwayIntersectionMarking](data, DefaultParseOptions())
	require.Error(t, err)

	f, err := DecodeLineStringFeature[TaxiwayIntersectionMarking](data, ParseOptions{ValidateGeometry: false})
	require.NoError(t, err)
	assert.Equal(t, "A", f.Properties.IDLin)
	assert.Equal(t, 95.0, f.Geometry.Coordinates[0].Lat)
}

func TestRequiredProperties(t *testing.T) {
	assert.Equal(t, []string{"id", "idthr"}, requiredProperties(typeOf[Blastpad]()))
	assert.Equal(t, []string{"id", "gsurftyp", "status"}, requiredProperties(typeOf[ApronElement]()))
	assert.Empty(t, requiredProperties(typeOf[Water]()))
}
