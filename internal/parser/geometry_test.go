package parser

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Coordinate
		wantErr bool
	}{
		{in: `[-80.0, 40.0]`, want: Coordinate{Lat: 40.0, Lon: -80.0}},
		{in: `[-80.0, 40.0, 120.5]`, want: Coordinate{Lat: 40.0, Lon: -80.0}},
		{in: `[0, 0]`, want: Coordinate{}},
		{in: `[-80.0]`, wantErr: true},
		{in: `[1, 2, 3, 4]`, wantErr: true},
		{in: `["a", "b"]`, wantErr: true},
		{in: `{"lat": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Coordinate
			err := json.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCoordinateEqual(t *testing.T) {
	a := Coordinate{Lat: 40.0, Lon: -80.0}
	assert.True(t, a.Equal(Coordinate{Lat: 40.0, Lon: -80.0}))
	assert.False(t, a.Equal(Coordinate{Lat: 40.0, Lon: -80.0 + 1e-12}))

	zero := Coordinate{}
	negZero := Coordinate{Lat: math.Copysign(0, -1)}
	assert.False(t, zero.Equal(negZero), "0 and -0 differ by bit pattern")

	nan := Coordinate{Lat: math.NaN()}
	assert.True(t, nan.Equal(nan))

	seen := map[[2]uint64]bool{a.Key(): true}
	assert.True(t, seen[Coordinate{Lat: 40.0, Lon: -80.0}.Key()])
}

func TestGeometryTypeString(t *testing.T) {
	assert.Equal(t, "Point", GeometryTypePoint.String())
	assert.Equal(t, "LineString", GeometryTypeLineString.String())
	assert.Equal(t, "Polygon", GeometryTypePolygon.String())
	assert.Equal(t, "Unknown", GeometryType(0).String())
}

func TestDecodeGeometry(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		g, err := decodePointGeometry(rawGeometry{Type: "Point", Coordinates: json.RawMessage(`[-80, 40]`)})
		require.NoError(t, err)
		assert.Equal(t, Coordinate{Lat: 40, Lon: -80}, g.Coordinates)
		assert.Equal(t, "Point", g.Type)
	})

	t.Run("linestring keeps order", func(t *testing.T) {
		g, err := decodeLineStringGeometry(rawGeometry{Type: "LineString", Coordinates: json.RawMessage(`[[1, 2], [3, 4], [1, 2]]`)})
		require.NoError(t, err)
		assert.Equal(t, []Coordinate{{Lat: 2, Lon: 1}, {Lat: 4, Lon: 3}, {Lat: 2, Lon: 1}}, g.Coordinates)
	})

	t.Run("polygon keeps holes", func(t *testing.T) {
		g, err := decodePolygonGeometry(rawGeometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[0, 0], [1, 0], [1, 1], [0, 0]], [[0.2, 0.2], [0.3, 0.2], [0.3, 0.3]]]`)})
		require.NoError(t, err)
		assert.Len(t, g.Coordinates, 2)
	})

	errs := []struct {
		name   string
		decode func() error
		want   GeometryType
	}{
		{"point missing coordinates", func() error {
			_, err := decodePointGeometry(rawGeometry{Type: "Point"})
			return err
		}, GeometryTypePoint},
		{"point null coordinates", func() error {
			_, err := decodePointGeometry(rawGeometry{Type: "Point", Coordinates: json.RawMessage(`null`)})
			return err
		}, GeometryTypePoint},
		{"linestring given a point", func() error {
			_, err := decodeLineStringGeometry(rawGeometry{Type: "LineString", Coordinates: json.RawMessage(`[1, 2]`)})
			return err
		}, GeometryTypeLineString},
		{"polygon without rings", func() error {
			_, err := decodePolygonGeometry(rawGeometry{Type: "Polygon", Coordinates: json.RawMessage(`[]`)})
			return err
		}, GeometryTypePolygon},
		{"polygon with short coordinate", func() error {
			_, err := decodePolygonGeometry(rawGeometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[1]]]`)})
			return err
		}, GeometryTypePolygon},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			var gerr *ErrInvalidGeometry
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.want, gerr.Type)
		})
	}
}
