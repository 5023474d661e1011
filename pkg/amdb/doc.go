// Package amdb decodes Airport Mapping Database (AMDB) documents into a typed
// model of an airport's movement area.
//
// An AMDB document is a JSON object mapping each feature group name
// ("runwayelement", "taxiwayholdingposition", ...) to a GeoJSON-like feature
// collection. Parsing turns it into an Airport holding one required
// AerodromeReferencePoint and a sequence of typed records for every other
// group, each in document order.
//
// # Basic Usage
//
//	airport, err := amdb.ParseAirport(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s at %v\n", airport.ReferencePoint.AirportID, airport.ReferencePoint.Location)
//	for _, rwy := range airport.RunwayElements {
//	    fmt.Println(rwy.Runway, rwy.SurfaceType)
//	}
//
// # Decoding Rules
//
// Categorical attributes (surface types, line colours, statuses, ...) are
// stored in the document as integer indices. They decode to named types whose
// String method gives the variant name. An index outside the known table is
// kept as-is and reports Known() == false; it never fails the document.
//
// Optional text attributes written as "" or "$UNK" decode to nil.
//
// Runway identifiers such as "09L.27R" decode to a RunwayID. Holding point
// references decode to a RunwayTarget when they contain "." and to a
// TaxiwayTarget otherwise.
//
// Geometry is converted to github.com/paulmach/orb types with x=longitude and
// y=latitude. Areas keep their outer ring only, closed if the document left it
// open.
//
// # Errors
//
// Any failure aborts the parse and no partial Airport is returned, unless
// ParseOptions.SkipInvalidFeatures is set. Per-feature failures are reported
// as *FeatureError carrying the group name and feature position:
//
//	var ferr *amdb.FeatureError
//	if errors.As(err, &ferr) {
//	    fmt.Printf("bad %s feature #%d\n", ferr.Group, ferr.Index)
//	}
//
// # Spatial Queries
//
//	visible := airport.ElementsInBounds(viewport)
//	fc := airport.FeatureCollection() // GeoJSON export
//
// # Multiple Airports
//
// LoadAirports parses many documents in parallel, and an AirportIndex answers
// which airports cover a region:
//
//	idx, err := amdb.BuildIndexFromDir("/data/amdb", amdb.NewParser(), amdb.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, entry := range idx.Query(region) {
//	    fmt.Println(entry.ICAO, entry.Path)
//	}
package amdb
