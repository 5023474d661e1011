package parser

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateCoordinate tests coordinate validation
func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"valid", 40.0, -80.0, false},
		{"lat max boundary", 90.0, 0.0, false},
		{"lat min boundary", -90.0, 0.0, false},
		{"lon max boundary", 0.0, 180.0, false},
		{"lon min boundary", 0.0, -180.0, false},
		{"lat too high", 90.1, 0.0, true},
		{"lat too low", -90.1, 0.0, true},
		{"lon too high", 0.0, 180.1, true},
		{"lon too low", 0.0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidateGeometry tests shape-specific geometry validation
func TestValidateGeometry(t *testing.T) {
	square := []Coordinate{{Lat: 40, Lon: -80}, {Lat: 40, Lon: -79}, {Lat: 41, Lon: -79}, {Lat: 40, Lon: -80}}

	tests := []struct {
		name     string
		validate func() error
		wantErr  string
	}{
		{
			name: "valid point",
			validate: func() error {
				return ValidatePoint(PointGeometry{Type: "Point", Coordinates: Coordinate{Lat: 40, Lon: -80}})
			},
		},
		{
			name: "point with wrong type tag",
			validate: func() error {
				return ValidatePoint(PointGeometry{Type: "MultiPoint", Coordinates: Coordinate{Lat: 40, Lon: -80}})
			},
			wantErr: `geometry type "MultiPoint"`,
		},
		{
			name: "point out of range",
			validate: func() error {
				return ValidatePoint(PointGeometry{Type: "Point", Coordinates: Coordinate{Lat: 91, Lon: -80}})
			},
			wantErr: "coordinate 0 invalid",
		},
		{
			name: "valid linestring",
			validate: func() error {
				return ValidateLineString(LineStringGeometry{Type: "LineString", Coordinates: square[:2]})
			},
		},
		{
			name: "linestring with one coordinate",
			validate: func() error {
				return ValidateLineString(LineStringGeometry{Type: "LineString", Coordinates: square[:1]})
			},
			wantErr: "at least 2 coordinates",
		},
		{
			name: "linestring out of range",
			validate: func() error {
				coords := []Coordinate{{Lat: 40, Lon: -80}, {Lat: 40, Lon: 181}}
				return ValidateLineString(LineStringGeometry{Type: "LineString", Coordinates: coords})
			},
			wantErr: "coordinate 1 invalid",
		},
		{
			name: "valid polygon",
			validate: func() error {
				return ValidatePolygon(PolygonGeometry{Type: "Polygon", Coordinates: [][]Coordinate{square}})
			},
		},
		{
			name: "open polygon ring is not a validation error",
			validate: func() error {
				return ValidatePolygon(PolygonGeometry{Type: "Polygon", Coordinates: [][]Coordinate{square[:3]}})
			},
		},
		{
			name: "polygon with empty hole",
			validate: func() error {
				return ValidatePolygon(PolygonGeometry{Type: "Polygon", Coordinates: [][]Coordinate{square, {}}})
			},
			wantErr: "ring 1 is empty",
		},
		{
			name: "polygon with linestring tag",
			validate: func() error {
				return ValidatePolygon(PolygonGeometry{Type: "LineString", Coordinates: [][]Coordinate{square}})
			},
			wantErr: "does not match group shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
			var gerr *ErrInvalidGeometry
			if !errors.As(err, &gerr) {
				t.Errorf("error %T is not *ErrInvalidGeometry", err)
			}
		})
	}
}
