package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beetlebugorg/amdb/internal/pkg/config"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../pkg/amdb/testdata/airport.json"

func testConfig() *config.Config {
	return &config.Config{
		Log:   config.LogConfig{Level: "info", Format: "text"},
		Parse: config.ParseConfig{ValidateGeometry: true},
	}
}

func TestRunSummary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-file", fixturePath}, testConfig(), &out))

	s := out.String()
	assert.Contains(t, s, "ICAO: KXYZ")
	assert.Contains(t, s, "Reference point: 40.000000, -80.000000")
	assert.Contains(t, s, "Longitude: -81.050000 to -79.999000")
	assert.Contains(t, s, "taxiwayholdingposition")
	assert.NotContains(t, s, "constructionarea")
	assert.NotContains(t, s, "Skipped Features")
}

func TestRunBBoxAndExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.geojson")

	var out bytes.Buffer
	args := []string{"-file", fixturePath, "-bbox", "-80.002,39.998,-79.998,40.002", "-geojson", path}
	require.NoError(t, run(args, testConfig(), &out))

	assert.Contains(t, out.String(), "Total: 3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 35)
}

func TestRunIndex(t *testing.T) {
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kxyz.json"), data, 0o644))

	t.Run("all airports", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-dir", dir}, testConfig(), &out))

		s := out.String()
		assert.Contains(t, s, "Airports: 1")
		assert.Contains(t, s, "KXYZ XYZ")
		assert.Contains(t, s, "Total: 1")
	})

	t.Run("bbox elsewhere", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-dir", dir, "-bbox", "0,0,1,1"}, testConfig(), &out))
		assert.Contains(t, out.String(), "Total: 0")
	})
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no file", nil},
		{"missing file", []string{"-file", "does-not-exist.json"}},
		{"bad bbox", []string{"-file", fixturePath, "-bbox", "1,2,3"}},
		{"unknown flag", []string{"-chart", fixturePath}},
		{"missing dir", []string{"-dir", filepath.Join(os.TempDir(), "amdb-info-missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(tt.args, testConfig(), &out))
		})
	}
}

func TestParseBBox(t *testing.T) {
	b, err := parseBBox("-80.5, 39.5, -79.5, 40.5")
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{Min: orb.Point{-80.5, 39.5}, Max: orb.Point{-79.5, 40.5}}, b)

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "1,1,0,0"} {
		_, err := parseBBox(bad)
		assert.Error(t, err, bad)
	}
}
