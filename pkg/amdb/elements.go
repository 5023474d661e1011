package amdb

import (
	"github.com/beetlebugorg/amdb/internal/parser"
	"github.com/paulmach/orb"
)

// Layer identifies the feature group an element was decoded from.
type Layer int

const (
	LayerAerodromeReferencePoint Layer = iota
	LayerApronElement
	LayerBlastpad
	LayerConstructionArea
	LayerDeicingArea
	LayerFinalApproachAndTakeoffArea
	LayerFrequencyArea
	LayerHotspot
	LayerLandAndHoldShortOperationLocation
	LayerPaintedCenterline
	LayerParkingStandArea
	LayerParkingStandLocation
	LayerRunwayDisplacedArea
	LayerRunwayElement
	LayerRunwayExitLine
	LayerRunwayIntersection
	LayerRunwayMarking
	LayerRunwayShoulder
	LayerRunwayThreshold
	LayerServiceRoad
	LayerStandGuidanceLine
	LayerStopway
	LayerTaxiwayElement
	LayerTaxiwayGuidanceLine
	LayerTaxiwayHoldingPosition
	LayerTaxiwayIntersectionMarking
	LayerTaxiwayShoulder
	LayerTouchdownLiftoffArea
	LayerVerticalLineStructure
	LayerVerticalPointStructure
	LayerVerticalPolygonalStructure
	LayerWater
)

// String returns the document group name of the layer, e.g. "runwayelement".
func (l Layer) String() string {
	if l < 0 || int(l) >= len(parser.Groups) {
		return "unknown"
	}
	return parser.Groups[l]
}

// Element is implemented by every airport record.
type Element interface {
	// ElementID returns the stable feature identity from the document.
	ElementID() uint64

	// Layer returns the feature group the element belongs to.
	Layer() Layer

	// Shape returns the element geometry: orb.Point, orb.LineString or orb.Polygon.
	Shape() orb.Geometry
}

// SameElement reports whether two records of the same kind have the same
// identity. Attributes and geometry are not compared.
func SameElement[E Element](a, b E) bool {
	return a.ElementID() == b.ElementID()
}

// AerodromeReferencePoint is the designated geographic location of the airport.
type AerodromeReferencePoint struct {
	ID          uint64
	AirportID   string // ICAO location indicator
	IATAID      string
	AirportName string
	Elevation   float64
	Location    orb.Point
}

// ApronElement is a part of an apron.
type ApronElement struct {
	ID          uint64
	ApronID     *string
	SurfaceType GroundSurfaceType
	Status      Status
	Geometry    orb.Polygon
}

// Blastpad is the blast protection area beyond a runway end.
type Blastpad struct {
	ID          uint64
	ThresholdID string
	Geometry    orb.Polygon
}

// ConstructionArea is an area under construction. Dates are kept as written.
type ConstructionArea struct {
	ID                     uint64
	PlannedStartDate       string
	PlannedEndDate         string
	PlannedInOperationDate string
	Geometry               orb.Polygon
}

type DeicingArea struct {
	ID                 uint64
	BaseID             *string
	SurfaceType        GroundSurfaceType
	Ident              string
	Status             Status
	RestrictedAircraft *string
	Geometry           orb.Polygon
}

// FinalApproachAndTakeoffArea is a helicopter FATO.
type FinalApproachAndTakeoffArea struct {
	ID               uint64
	RunwayDesignator *string
	Geometry         orb.Polygon
}

// FrequencyArea is the area in which a radio frequency must be monitored.
type FrequencyArea struct {
	ID        uint64
	Frequency float64
	Station   *string
	Geometry  orb.Polygon
}

type Hotspot struct {
	ID        uint64
	HotspotID *string
	Geometry  orb.Polygon
}

// LandAndHoldShortOperationLocation is a LAHSO hold-short line.
type LandAndHoldShortOperationLocation struct {
	ID                 uint64
	HoldingPointTarget HoldingPointTarget
	ThresholdID        string
	Geometry           orb.LineString
}

type PaintedCenterline struct {
	ID       uint64
	Runway   RunwayID
	Geometry orb.LineString
}

type ParkingStandArea struct {
	ID                 uint64
	StandID            *string
	ApronID            *string
	SurfaceType        GroundSurfaceType
	Jetway             Availability
	Fuel               string
	RestrictedAircraft *string
	Towing             Availability
	GroundPower        Availability
	TerminalName       *string
	Geometry           orb.Polygon
}

type ParkingStandLocation struct {
	ID            uint64
	StandID       *string
	AircraftTypes []string
	TerminalName  *string
	Location      orb.Point
}

type RunwayDisplacedArea struct {
	ID          uint64
	ThresholdID string
	Status      Status
	SurfaceType SurfaceType
	Geometry    orb.Polygon
}

type RunwayElement struct {
	ID          uint64
	Runway      RunwayID
	Width       float64
	Length      float64
	SurfaceType SurfaceType
	Geometry    orb.Polygon
}

type RunwayExitLine struct {
	ID        uint64
	Color     LineColour
	Direction Direction
	Style     Style
	Status    Status
	TaxiwayID *string
	Geometry  orb.LineString
}

type RunwayIntersection struct {
	ID             uint64
	IntersectionID string
	SurfaceType    SurfaceType
	Geometry       orb.Polygon
}

type RunwayMarking struct {
	ID       uint64
	Runway   RunwayID
	Geometry orb.Polygon
}

type RunwayShoulder struct {
	ID          uint64
	Runway      RunwayID
	Status      Status
	SurfaceType GroundSurfaceType
	Geometry    orb.Polygon
}

// RunwayThreshold is the beginning of the runway portion usable for landing.
// Declared distances are in metres, bearings in degrees.
type RunwayThreshold struct {
	ID                     uint64
	ThresholdID            string
	TouchDownZoneElevation float64
	TouchDownZoneSlope     float64
	TrueBearing            float64
	MagneticBearing        float64
	RunwaySlope            float64
	TORA                   float64
	TODA                   float64
	ASDA                   float64
	LDA                    float64
	Category               LandingCategory
	PapiVasi               PapiVasi
	Status                 Status
	ThresholdType          ThresholdType
	Location               orb.Point
}

type ServiceRoad struct {
	ID          uint64
	SurfaceType GroundSurfaceType
	BaseID      *string
	Geometry    orb.Polygon
}

type StandGuidanceLine struct {
	ID           uint64
	Color        LineColour
	Direction    Direction
	Style        Style
	Status       Status
	StandID      *string
	TerminalName *string
	Geometry     orb.LineString
}

type Stopway struct {
	ID          uint64
	ThresholdID string
	Status      Status
	SurfaceType SurfaceType
	Geometry    orb.Polygon
}

type TaxiwayElement struct {
	ID          uint64
	TaxiwayID   *string
	ApronID     *string
	SurfaceType GroundSurfaceType
	Bridge      Bridge
	Geometry    orb.Polygon
}

type TaxiwayGuidanceLine struct {
	ID        uint64
	Color     LineColour
	Direction Direction
	Style     Style
	Status    Status
	TaxiwayID *string
	Geometry  orb.LineString
}

// TaxiwayHoldingPosition is a taxiway holding position marking.
// HoldingPointTarget is nil when the document leaves it unknown.
type TaxiwayHoldingPosition struct {
	ID                 uint64
	Status             Status
	TaxiwayID          *string
	Category           CatStop
	HoldingPointTarget HoldingPointTarget
	Geometry           orb.LineString
}

type TaxiwayIntersectionMarking struct {
	ID        uint64
	TaxiwayID string
	Geometry  orb.LineString
}

type TaxiwayShoulder struct {
	ID          uint64
	SurfaceType GroundSurfaceType
	Status      Status
	Geometry    orb.Polygon
}

// TouchdownLiftoffArea is a helicopter TLOF.
type TouchdownLiftoffArea struct {
	ID               uint64
	RunwayDesignator *string
	SurfaceType      SurfaceType
	Geometry         orb.Polygon
}

type VerticalLineStructure struct {
	ID            uint64
	StructureType LineStructureType
	Material      Material
	Height        float64
	Elevation     float64
	Lighting      Conformance
	Marking       Conformance
	Geometry      orb.LineString
}

type VerticalPointStructure struct {
	ID            uint64
	StructureType PointStructureType
	Material      Material
	Height        float64
	Elevation     float64
	Lighting      Conformance
	Radius        float64
	Marking       Conformance
	Location      orb.Point
}

type VerticalPolygonalStructure struct {
	ID            uint64
	Ident         *string
	StructureType PolygonalStructureType
	Material      Material
	Height        float64
	Elevation     float64
	Geometry      orb.Polygon
}

// Water is a water area. ID is 0 when the document does not carry one.
type Water struct {
	ID       uint64
	Geometry orb.Polygon
}

// Element implementations.

func (e *AerodromeReferencePoint) ElementID() uint64 { return e.ID }
func (e *AerodromeReferencePoint) Layer() Layer { return LayerAerodromeReferencePoint }
func (e *AerodromeReferencePoint) Shape() orb.Geometry { return e.Location }

func (e *ApronElement) ElementID() uint64 { return e.ID }
func (e *ApronElement) Layer() Layer { return LayerApronElement }
func (e *ApronElement) Shape() orb.Geometry { return e.Geometry }

func (e *Blastpad) ElementID() uint64 { return e.ID }
func (e *Blastpad) Layer() Layer { return LayerBlastpad }
func (e *Blastpad) Shape() orb.Geometry { return e.Geometry }

func (e *ConstructionArea) ElementID() uint64 { return e.ID }
func (e *ConstructionArea) Layer() Layer { return LayerConstructionArea }
func (e *ConstructionArea) Shape() orb.Geometry { return e.Geometry }

func (e *DeicingArea) ElementID() uint64 { return e.ID }
func (e *DeicingArea) Layer() Layer { return LayerDeicingArea }
func (e *DeicingArea) Shape() orb.Geometry { return e.Geometry }

func (e *FinalApproachAndTakeoffArea) ElementID() uint64 { return e.ID }
func (e *FinalApproachAndTakeoffArea) Layer() Layer { return LayerFinalApproachAndTakeoffArea }
func (e *FinalApproachAndTakeoffArea) Shape() orb.Geometry { return e.Geometry }

func (e *FrequencyArea) ElementID() uint64 { return e.ID }
func (e *FrequencyArea) Layer() Layer { return LayerFrequencyArea }
func (e *FrequencyArea) Shape() orb.Geometry { return e.Geometry }

func (e *Hotspot) ElementID() uint64 { return e.ID }
func (e *Hotspot) Layer() Layer { return LayerHotspot }
func (e *Hotspot) Shape() orb.Geometry { return e.Geometry }

func (e *LandAndHoldShortOperationLocation) ElementID() uint64 { return e.ID }
func (e *LandAndHoldShortOperationLocation) Layer() Layer { return LayerLandAndHoldShortOperationLocation }
func (e *LandAndHoldShortOperationLocation) Shape() orb.Geometry { return e.Geometry }

func (e *PaintedCenterline) ElementID() uint64 { return e.ID }
func (e *PaintedCenterline) Layer() Layer { return LayerPaintedCenterline }
func (e *PaintedCenterline) Shape() orb.Geometry { return e.Geometry }

func (e *ParkingStandArea) ElementID() uint64 { return e.ID }
func (e *ParkingStandArea) Layer() Layer { return LayerParkingStandArea }
func (e *ParkingStandArea) Shape() orb.Geometry { return e.Geometry }

func (e *ParkingStandLocation) ElementID() uint64 { return e.ID }
func (e *ParkingStandLocation) Layer() Layer { return LayerParkingStandLocation }
func (e *ParkingStandLocation) Shape() orb.Geometry { return e.Location }

func (e *RunwayDisplacedArea) ElementID() uint64 { return e.ID }
func (e *RunwayDisplacedArea) Layer() Layer { return LayerRunwayDisplacedArea }
func (e *RunwayDisplacedArea) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayElement) ElementID() uint64 { return e.ID }
func (e *RunwayElement) Layer() Layer { return LayerRunwayElement }
func (e *RunwayElement) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayExitLine) ElementID() uint64 { return e.ID }
func (e *RunwayExitLine) Layer() Layer { return LayerRunwayExitLine }
func (e *RunwayExitLine) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayIntersection) ElementID() uint64 { return e.ID }
func (e *RunwayIntersection) Layer() Layer { return LayerRunwayIntersection }
func (e *RunwayIntersection) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayMarking) ElementID() uint64 { return e.ID }
func (e *RunwayMarking) Layer() Layer { return LayerRunwayMarking }
func (e *RunwayMarking) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayShoulder) ElementID() uint64 { return e.ID }
func (e *RunwayShoulder) Layer() Layer { return LayerRunwayShoulder }
func (e *RunwayShoulder) Shape() orb.Geometry { return e.Geometry }

func (e *RunwayThreshold) ElementID() uint64 { return e.ID }
func (e *RunwayThreshold) Layer() Layer { return LayerRunwayThreshold }
func (e *RunwayThreshold) Shape() orb.Geometry { return e.Location }

func (e *ServiceRoad) ElementID() uint64 { return e.ID }
func (e *ServiceRoad) Layer() Layer { return LayerServiceRoad }
func (e *ServiceRoad) Shape() orb.Geometry { return e.Geometry }

func (e *StandGuidanceLine) ElementID() uint64 { return e.ID }
func (e *StandGuidanceLine) Layer() Layer { return LayerStandGuidanceLine }
func (e *StandGuidanceLine) Shape() orb.Geometry { return e.Geometry }

func (e *Stopway) ElementID() uint64 { return e.ID }
func (e *Stopway) Layer() Layer { return LayerStopway }
func (e *Stopway) Shape() orb.Geometry { return e.Geometry }

func (e *TaxiwayElement) ElementID() uint64 { return e.ID }
func (e *TaxiwayElement) Layer() Layer { return LayerTaxiwayElement }
func (e *TaxiwayElement) Shape() orb.Geometry { return e.Geometry }

func (e *TaxiwayGuidanceLine) ElementID() uint64 { return e.ID }
func (e *TaxiwayGuidanceLine) Layer() Layer { return LayerTaxiwayGuidanceLine }
func (e *TaxiwayGuidanceLine) Shape() orb.Geometry { return e.Geometry }

func (e *TaxiwayHoldingPosition) ElementID() uint64 { return e.ID }
func (e *TaxiwayHoldingPosition) Layer() Layer { return LayerTaxiwayHoldingPosition }
func (e *TaxiwayHoldingPosition) Shape() orb.Geometry { return e.Geometry }

func (e *TaxiwayIntersectionMarking) ElementID() uint64 { return e.ID }
func (e *TaxiwayIntersectionMarking) Layer() Layer { return LayerTaxiwayIntersectionMarking }
func (e *TaxiwayIntersectionMarking) Shape() orb.Geometry { return e.Geometry }

func (e *TaxiwayShoulder) ElementID() uint64 { return e.ID }
func (e *TaxiwayShoulder) Layer() Layer { return LayerTaxiwayShoulder }
func (e *TaxiwayShoulder) Shape() orb.Geometry { return e.Geometry }

func (e *TouchdownLiftoffArea) ElementID() uint64 { return e.ID }
func (e *TouchdownLiftoffArea) Layer() Layer { return LayerTouchdownLiftoffArea }
func (e *TouchdownLiftoffArea) Shape() orb.Geometry { return e.Geometry }

func (e *VerticalLineStructure) ElementID() uint64 { return e.ID }
func (e *VerticalLineStructure) Layer() Layer { return LayerVerticalLineStructure }
func (e *VerticalLineStructure) Shape() orb.Geometry { return e.Geometry }

func (e *VerticalPointStructure) ElementID() uint64 { return e.ID }
func (e *VerticalPointStructure) Layer() Layer { return LayerVerticalPointStructure }
func (e *VerticalPointStructure) Shape() orb.Geometry { return e.Location }

func (e *VerticalPolygonalStructure) ElementID() uint64 { return e.ID }
func (e *VerticalPolygonalStructure) Layer() Layer { return LayerVerticalPolygonalStructure }
func (e *VerticalPolygonalStructure) Shape() orb.Geometry { return e.Geometry }

func (e *Water) ElementID() uint64 { return e.ID }
func (e *Water) Layer() Layer { return LayerWater }
func (e *Water) Shape() orb.Geometry { return e.Geometry }
