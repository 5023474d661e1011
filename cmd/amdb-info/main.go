// Command amdb-info prints a summary of an AMDB airport document.
//
// Usage:
//
//	amdb-info -file KXYZ.geojson [-bbox minLon,minLat,maxLon,maxLat] [-geojson out.geojson]
//	amdb-info -dir /data/amdb [-bbox minLon,minLat,maxLon,maxLat]
//
// With -dir every document below the directory is loaded and the airports
// intersecting -bbox (or all of them) are listed.
//
// Logging and parse behavior are configured through amdb.yaml or AMDB_*
// environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/beetlebugorg/amdb/internal/pkg/config"
	"github.com/beetlebugorg/amdb/internal/pkg/logging"
	"github.com/beetlebugorg/amdb/pkg/amdb"
	"github.com/paulmach/orb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		slog.Error("amdb-info failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("amdb-info", flag.ContinueOnError)
	path := fs.String("file", "", "Path to AMDB document")
	dir := fs.String("dir", "", "Directory of AMDB documents to index")
	bbox := fs.String("bbox", "", "Query box as minLon,minLat,maxLon,maxLat")
	export := fs.String("geojson", "", "Write the airport as a GeoJSON feature collection to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" && *dir == "" {
		return errors.New("please provide -file path or -dir path")
	}

	var query *orb.Bound
	if *bbox != "" {
		b, err := parseBBox(*bbox)
		if err != nil {
			return err
		}
		query = &b
	}

	opts := parseOptions(cfg)

	if *dir != "" {
		return runIndex(out, *dir, query, opts)
	}

	airport, err := amdb.NewParser().ParseWithOptions(*path, opts)
	if err != nil {
		return err
	}

	printSummary(out, airport)

	if query != nil {
		hits := airport.ElementsInBounds(*query)
		fmt.Fprintf(out, "\n=== Elements in %s ===\n", *bbox)
		for _, e := range hits {
			fmt.Fprintf(out, "%-34s %d\n", e.Layer(), e.ElementID())
		}
		fmt.Fprintf(out, "Total: %d\n", len(hits))
	}

	if *export != "" {
		data, err := airport.FeatureCollection().MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
		if err := os.WriteFile(*export, data, 0o644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		slog.Info("wrote geojson", "path", *export, "features", airport.Len())
	}

	return nil
}

func parseOptions(cfg *config.Config) amdb.ParseOptions {
	opts := amdb.DefaultParseOptions()
	opts.ValidateGeometry = cfg.Parse.ValidateGeometry
	opts.SkipInvalidFeatures = cfg.Parse.SkipInvalidFeatures
	opts.StrictReferencePoint = cfg.Parse.StrictReferencePoint
	if cfg.Parse.Workers > 0 {
		opts.Workers = cfg.Parse.Workers
	}
	return opts
}

// runIndex loads every document under dir and lists the airports
// intersecting query, or all airports when query is nil.
func runIndex(out io.Writer, dir string, query *orb.Bound, opts amdb.ParseOptions) error {
	loadOpts := amdb.DefaultLoadOptions()
	loadOpts.Parse = opts

	idx, err := amdb.BuildIndexFromDir(dir, amdb.NewParser(), loadOpts)
	if err != nil {
		return err
	}

	entries := idx.All()
	if query != nil {
		entries = idx.Query(*query)
	}

	bounds := idx.Bounds()
	fmt.Fprintf(out, "=== Airport Index ===\n")
	fmt.Fprintf(out, "Airports: %d\n", idx.Count())
	fmt.Fprintf(out, "Longitude: %.6f to %.6f\n", bounds.Min.Lon(), bounds.Max.Lon())
	fmt.Fprintf(out, "Latitude: %.6f to %.6f\n\n", bounds.Min.Lat(), bounds.Max.Lat())

	for _, e := range entries {
		fmt.Fprintf(out, "%-4s %-3s %6d  %s\n", e.ICAO, e.IATA, e.Elements, e.Path)
	}
	fmt.Fprintf(out, "Total: %d\n", len(entries))
	return nil
}

func printSummary(out io.Writer, airport *amdb.Airport) {
	arp := airport.ReferencePoint
	fmt.Fprintf(out, "=== Airport Information ===\n")
	fmt.Fprintf(out, "ICAO: %s\n", arp.AirportID)
	fmt.Fprintf(out, "IATA: %s\n", arp.IATAID)
	fmt.Fprintf(out, "Name: %s\n", arp.AirportName)
	fmt.Fprintf(out, "Elevation: %.1f\n", arp.Elevation)
	fmt.Fprintf(out, "Reference point: %.6f, %.6f\n\n", arp.Location.Lat(), arp.Location.Lon())

	bounds := airport.Bounds()
	fmt.Fprintf(out, "=== Geographic Bounds ===\n")
	fmt.Fprintf(out, "Longitude: %.6f to %.6f\n", bounds.Min.Lon(), bounds.Max.Lon())
	fmt.Fprintf(out, "Latitude: %.6f to %.6f\n\n", bounds.Min.Lat(), bounds.Max.Lat())

	counts := airport.LayerCounts()
	layers := make([]amdb.Layer, 0, len(counts))
	for l, n := range counts {
		if n > 0 {
			layers = append(layers, l)
		}
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i] < layers[j] })

	fmt.Fprintf(out, "=== Layers ===\n")
	for _, l := range layers {
		fmt.Fprintf(out, "%-34s: %d\n", l, counts[l])
	}

	if skipped := airport.Skipped(); len(skipped) > 0 {
		fmt.Fprintf(out, "\n=== Skipped Features ===\n")
		for _, s := range skipped {
			fmt.Fprintf(out, "%v\n", s)
		}
	}
}

// parseBBox parses "minLon,minLat,maxLon,maxLat".
func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q: expected minLon,minLat,maxLon,maxLat", s)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		v[i] = f
	}
	if v[0] > v[2] || v[1] > v[3] {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q: min exceeds max", s)
	}

	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}
