package amdb

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// AirportIndex provides spatial queries over a collection of airports.
//
// The index stores lightweight metadata for each airport and an R-tree over
// their bounds, so a region can be resolved to the airports covering it
// without touching their elements.
//
// Example:
//
//	idx, err := amdb.BuildIndexFromDir("/data/amdb", amdb.NewParser(), amdb.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	florida := orb.Bound{Min: orb.Point{-87, 24}, Max: orb.Point{-80, 31}}
//	for _, entry := range idx.Query(florida) {
//	    fmt.Println(entry.ICAO, entry.Path)
//	}
type AirportIndex struct {
	airports []AirportEntry
	rtree    *rtreego.Rtree
}

// AirportEntry contains indexed metadata for a single airport.
type AirportEntry struct {
	Path      string    // Source document, empty when unknown
	ICAO      string    // ICAO location indicator
	IATA      string    // IATA designator, may be empty
	Name      string    // Airport name
	Location  orb.Point // Aerodrome reference point
	GeoBounds orb.Bound // Bound of every element
	Elements  int       // Total element count
	Airport   *Airport  // Decoded airport
}

// Bounds implements rtreego.Spatial.
func (e *AirportEntry) Bounds() rtreego.Rect {
	return boundToRect(e.GeoBounds, 0)
}

// documentExtensions are the file extensions BuildIndexFromDir loads.
var documentExtensions = map[string]bool{
	".json":    true,
	".geojson": true,
}

// BuildIndexFromDir builds an airport index by scanning a directory tree.
//
// Every .json or .geojson file below root is parsed with LoadAirports. With
// opts.SkipErrors, documents that fail are left out of the index.
func BuildIndexFromDir(root string, parser Parser, opts LoadOptions) (*AirportIndex, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && documentExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no airports found in %s", root)
	}

	set, errs := LoadAirports(paths, parser, opts)
	if set == nil {
		return nil, errs[0]
	}
	if len(set.Airports) == 0 {
		return nil, fmt.Errorf("no airports could be loaded (%d errors)", len(errs))
	}

	return BuildIndex(set), nil
}

// BuildIndex creates an index from a loaded AirportSet.
func BuildIndex(set *AirportSet) *AirportIndex {
	entries := make([]AirportEntry, len(set.Airports))

	// 2D, min=25 children, max=50 children
	rtree := rtreego.NewTree(2, 25, 50)

	for i, loaded := range set.Airports {
		arp := loaded.Airport.ReferencePoint
		entries[i] = AirportEntry{
			Path:      loaded.Path,
			ICAO:      arp.AirportID,
			IATA:      arp.IATAID,
			Name:      arp.AirportName,
			Location:  arp.Location,
			GeoBounds: loaded.Airport.Bounds(),
			Elements:  loaded.Airport.Len(),
			Airport:   loaded.Airport,
		}
		rtree.Insert(&entries[i])
	}

	return &AirportIndex{
		airports: entries,
		rtree:    rtree,
	}
}

// Query returns the airports whose bounds intersect b, edges included,
// sorted by ICAO indicator and then by path.
func (idx *AirportIndex) Query(b orb.Bound) []AirportEntry {
	if b.IsEmpty() {
		return nil
	}

	var result []AirportEntry
	for _, spatial := range idx.rtree.SearchIntersect(boundToRect(b, indexEpsilon)) {
		entry := spatial.(*AirportEntry)
		if entry.GeoBounds.Intersects(b) {
			result = append(result, *entry)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ICAO != result[j].ICAO {
			return result[i].ICAO < result[j].ICAO
		}
		return result[i].Path < result[j].Path
	})

	return result
}

// Count returns the total number of airports in the index.
func (idx *AirportIndex) Count() int {
	return len(idx.airports)
}

// Bounds returns the union of all airport bounds in the index.
func (idx *AirportIndex) Bounds() orb.Bound {
	if len(idx.airports) == 0 {
		return orb.Bound{}
	}

	bounds := idx.airports[0].GeoBounds
	for i := 1; i < len(idx.airports); i++ {
		bounds = bounds.Union(idx.airports[i].GeoBounds)
	}

	return bounds
}

// All returns a copy of the airport entries in the index, in load order.
func (idx *AirportIndex) All() []AirportEntry {
	return slices.Clone(idx.airports)
}
