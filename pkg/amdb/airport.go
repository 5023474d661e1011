package amdb

import (
	"sync"

	"github.com/paulmach/orb"
)

// Airport is the decoded model of one AMDB document.
//
// ReferencePoint is always present. Every other group is a sequence in
// document order and may be empty. An Airport is not modified after parsing
// and is safe for concurrent use.
type Airport struct {
	ReferencePoint AerodromeReferencePoint

	ApronElements                      []ApronElement
	Blastpads                          []Blastpad
	ConstructionAreas                  []ConstructionArea
	DeicingAreas                       []DeicingArea
	FinalApproachAndTakeoffAreas       []FinalApproachAndTakeoffArea
	FrequencyAreas                     []FrequencyArea
	Hotspots                           []Hotspot
	LandAndHoldShortOperationLocations []LandAndHoldShortOperationLocation
	PaintedCenterlines                 []PaintedCenterline
	ParkingStandAreas                  []ParkingStandArea
	ParkingStandLocations              []ParkingStandLocation
	RunwayDisplacedAreas               []RunwayDisplacedArea
	RunwayElements                     []RunwayElement
	RunwayExitLines                    []RunwayExitLine
	RunwayIntersections                []RunwayIntersection
	RunwayMarkings                     []RunwayMarking
	RunwayShoulders                    []RunwayShoulder
	RunwayThresholds                   []RunwayThreshold
	ServiceRoads                       []ServiceRoad
	StandGuidanceLines                 []StandGuidanceLine
	Stopways                           []Stopway
	TaxiwayElements                    []TaxiwayElement
	TaxiwayGuidanceLines               []TaxiwayGuidanceLine
	TaxiwayHoldingPositions            []TaxiwayHoldingPosition
	TaxiwayIntersectionMarkings        []TaxiwayIntersectionMarking
	TaxiwayShoulders                   []TaxiwayShoulder
	TouchdownLiftoffAreas              []TouchdownLiftoffArea
	VerticalLineStructures             []VerticalLineStructure
	VerticalPointStructures            []VerticalPointStructure
	VerticalPolygonalStructures        []VerticalPolygonalStructure
	Waters                             []Water

	skipped []*FeatureError

	indexOnce sync.Once
	index     *elementIndex
}

// Skipped returns the features dropped because ParseOptions.SkipInvalidFeatures
// was set, in group order then feature order.
func (a *Airport) Skipped() []*FeatureError {
	return a.skipped
}

// Elements returns every record of the airport, reference point first, then
// each group in document group order with features in document order.
func (a *Airport) Elements() []Element {
	out := make([]Element, 0, a.Len())
	out = append(out, &a.ReferencePoint)
	out = appendElements(out, a.ApronElements)
	out = appendElements(out, a.Blastpads)
	out = appendElements(out, a.ConstructionAreas)
	out = appendElements(out, a.DeicingAreas)
	out = appendElements(out, a.FinalApproachAndTakeoffAreas)
	out = appendElements(out, a.FrequencyAreas)
	out = appendElements(out, a.Hotspots)
	out = appendElements(out, a.LandAndHoldShortOperationLocations)
	out = appendElements(out, a.PaintedCenterlines)
	out = appendElements(out, a.ParkingStandAreas)
	out = appendElements(out, a.ParkingStandLocations)
	out = appendElements(out, a.RunwayDisplacedAreas)
	out = appendElements(out, a.RunwayElements)
	out = appendElements(out, a.RunwayExitLines)
	out = appendElements(out, a.RunwayIntersections)
	out = appendElements(out, a.RunwayMarkings)
	out = appendElements(out, a.RunwayShoulders)
	out = appendElements(out, a.RunwayThresholds)
	out = appendElements(out, a.ServiceRoads)
	out = appendElements(out, a.StandGuidanceLines)
	out = appendElements(out, a.Stopways)
	out = appendElements(out, a.TaxiwayElements)
	out = appendElements(out, a.TaxiwayGuidanceLines)
	out = appendElements(out, a.TaxiwayHoldingPositions)
	out = appendElements(out, a.TaxiwayIntersectionMarkings)
	out = appendElements(out, a.TaxiwayShoulders)
	out = appendElements(out, a.TouchdownLiftoffAreas)
	out = appendElements(out, a.VerticalLineStructures)
	out = appendElements(out, a.VerticalPointStructures)
	out = appendElements(out, a.VerticalPolygonalStructures)
	out = appendElements(out, a.Waters)
	return out
}

// Len returns the number of records in the airport, reference point included.
func (a *Airport) Len() int {
	n := 0
	for _, c := range a.LayerCounts() {
		n += c
	}
	return n
}

// LayerCounts returns the number of records per layer.
func (a *Airport) LayerCounts() map[Layer]int {
	return map[Layer]int{
		LayerAerodromeReferencePoint:           1,
		LayerApronElement:                      len(a.ApronElements),
		LayerBlastpad:                          len(a.Blastpads),
		LayerConstructionArea:                  len(a.ConstructionAreas),
		LayerDeicingArea:                       len(a.DeicingAreas),
		LayerFinalApproachAndTakeoffArea:       len(a.FinalApproachAndTakeoffAreas),
		LayerFrequencyArea:                     len(a.FrequencyAreas),
		LayerHotspot:                           len(a.Hotspots),
		LayerLandAndHoldShortOperationLocation: len(a.LandAndHoldShortOperationLocations),
		LayerPaintedCenterline:                 len(a.PaintedCenterlines),
		LayerParkingStandArea:                  len(a.ParkingStandAreas),
		LayerParkingStandLocation:              len(a.ParkingStandLocations),
		LayerRunwayDisplacedArea:               len(a.RunwayDisplacedAreas),
		LayerRunwayElement:                     len(a.RunwayElements),
		LayerRunwayExitLine:                    len(a.RunwayExitLines),
		LayerRunwayIntersection:                len(a.RunwayIntersections),
		LayerRunwayMarking:                     len(a.RunwayMarkings),
		LayerRunwayShoulder:                    len(a.RunwayShoulders),
		LayerRunwayThreshold:                   len(a.RunwayThresholds),
		LayerServiceRoad:                       len(a.ServiceRoads),
		LayerStandGuidanceLine:                 len(a.StandGuidanceLines),
		LayerStopway:                           len(a.Stopways),
		LayerTaxiwayElement:                    len(a.TaxiwayElements),
		LayerTaxiwayGuidanceLine:               len(a.TaxiwayGuidanceLines),
		LayerTaxiwayHoldingPosition:            len(a.TaxiwayHoldingPositions),
		LayerTaxiwayIntersectionMarking:        len(a.TaxiwayIntersectionMarkings),
		LayerTaxiwayShoulder:                   len(a.TaxiwayShoulders),
		LayerTouchdownLiftoffArea:              len(a.TouchdownLiftoffAreas),
		LayerVerticalLineStructure:             len(a.VerticalLineStructures),
		LayerVerticalPointStructure:            len(a.VerticalPointStructures),
		LayerVerticalPolygonalStructure:        len(a.VerticalPolygonalStructures),
		LayerWater:                             len(a.Waters),
	}
}

// Bounds returns the bounding box of every element of the airport.
func (a *Airport) Bounds() orb.Bound {
	b := a.ReferencePoint.Location.Bound()
	for _, e := range a.Elements() {
		b = b.Union(e.Shape().Bound())
	}
	return b
}

// appendElements appends pointers to the records of s, which stay owned by
// the airport.
func appendElements[T any, PT interface {
	*T
	Element
}](out []Element, s []T) []Element {
	for i := range s {
		out = append(out, PT(&s[i]))
	}
	return out
}
