package amdb

// Categorical attributes. Each type has its own variant table, listed in
// document index order. A value outside its table is an unknown variant that
// still carries the index found in the document.

// GroundSurfaceType is the ground surface typology (gsurftyp) of aprons,
// stands, taxiways, shoulders and service roads.
type GroundSurfaceType int32

const (
	GroundSurfaceConcrete GroundSurfaceType = iota
	GroundSurfaceAsphalt
	GroundSurfaceDesertOrSandOrDirt
	GroundSurfaceBareEarth
	GroundSurfaceSnowOrIce
	GroundSurfaceWater
	GroundSurfaceGrassOrTurf
	GroundSurfaceGravelOrCinders
	GroundSurfacePiercedSteelPlanks
	GroundSurfaceBitumen
	GroundSurfaceBrick
	GroundSurfaceMacadam
	GroundSurfaceStone
	GroundSurfaceCoral
	GroundSurfaceClay
	GroundSurfaceLaterite
	GroundSurfaceLandingMats
	GroundSurfaceMembrane
	GroundSurfaceWood
)

var groundSurfaceTypeVariants = variants{
	"Concrete",
	"Asphalt",
	"DesertOrSandOrDirt",
	"BareEarth",
	"SnowOrIce",
	"Water",
	"GrassOrTurf",
	"GravelOrCinders",
	"PiercedSteelPlanks",
	"Bitumen",
	"Brick",
	"Macadam",
	"Stone",
	"Coral",
	"Clay",
	"Laterite",
	"LandingMats",
	"Membrane",
	"Wood",
}

func (g GroundSurfaceType) String() string { return groundSurfaceTypeVariants.name(int32(g)) }
func (g GroundSurfaceType) Known() bool { return groundSurfaceTypeVariants.known(int32(g)) }
func (g GroundSurfaceType) Index() int32 { return int32(g) }

// SurfaceType is the paved surface typology (surftype) of runway areas, including grooving.
type SurfaceType int32

const (
	SurfaceConcreteGrooved SurfaceType = iota
	SurfaceConcreteNoneGrooved
	SurfaceAsphaltGrooved
	SurfaceAsphaltNonGrooved
	SurfaceDesertOrSandOrDirt
	SurfaceBareEarth
	SurfaceSnowOrIce
	SurfaceWater
	SurfaceGrassOrTurf
	SurfaceAggregateFrictionSealCoat
	SurfaceGravelOrCinders
	SurfacePorousFrictionCourses
	SurfacePiercedSteelPlanks
	SurfaceRubberizedFrictionSealCoat
	SurfaceBitumen
	SurfaceBrick
	SurfaceMacadam
	SurfaceStone
	SurfaceCoral
	SurfaceClay
	SurfaceLaterite
	SurfaceLandingMats
	SurfaceMembrane
	SurfaceWood
)

var surfaceTypeVariants = variants{
	"ConcreteGrooved",
	"ConcreteNoneGrooved",
	"AsphaltGrooved",
	"AsphaltNonGrooved",
	"DesertOrSandOrDirt",
	"BareEarth",
	"SnowOrIce",
	"Water",
	"GrassOrTurf",
	"AggregateFrictionSealCoat",
	"GravelOrCinders",
	"PorousFrictionCourses",
	"PiercedSteelPlanks",
	"RubberizedFrictionSealCoat",
	"Bitumen",
	"Brick",
	"Macadam",
	"Stone",
	"Coral",
	"Clay",
	"Laterite",
	"LandingMats",
	"Membrane",
	"Wood",
}

func (s SurfaceType) String() string { return surfaceTypeVariants.name(int32(s)) }
func (s SurfaceType) Known() bool { return surfaceTypeVariants.known(int32(s)) }
func (s SurfaceType) Index() int32 { return int32(s) }

// Status is the operational status of an element.
type Status int32

const (
	StatusClosed Status = iota
	StatusOpen
)

var statusVariants = variants{
	"Closed",
	"Open",
}

func (s Status) String() string { return statusVariants.name(int32(s)) }
func (s Status) Known() bool { return statusVariants.known(int32(s)) }
func (s Status) Index() int32 { return int32(s) }

// Availability is whether a stand service (jetway, towing, ground power) is provided.
type Availability int32

const (
	AvailabilityUnavailable Availability = iota
	AvailabilityAvailable
)

var availabilityVariants = variants{
	"Unavailable",
	"Available",
}

func (a Availability) String() string { return availabilityVariants.name(int32(a)) }
func (a Availability) Known() bool { return availabilityVariants.known(int32(a)) }
func (a Availability) Index() int32 { return int32(a) }

// LandingCategory is the approach category of a runway threshold.
type LandingCategory int32

const (
	LandingCategoryNpa LandingCategory = iota
	LandingCategoryCat1
	LandingCategoryCat2
	LandingCategoryCat3A
	LandingCategoryCat3B
	LandingCategoryCat3C
)

var landingCategoryVariants = variants{
	"Npa",
	"Cat1",
	"Cat2",
	"Cat3A",
	"Cat3B",
	"Cat3C",
}

func (l LandingCategory) String() string { return landingCategoryVariants.name(int32(l)) }
func (l LandingCategory) Known() bool { return landingCategoryVariants.known(int32(l)) }
func (l LandingCategory) Index() int32 { return int32(l) }

// CatStop is the ILS category a holding position protects.
type CatStop int32

const (
	CatStopNone CatStop = iota
	CatStopCat1
	CatStopCat2Or3
)

var catStopVariants = variants{
	"None",
	"Cat1",
	"Cat2Or3",
}

func (c CatStop) String() string { return catStopVariants.name(int32(c)) }
func (c CatStop) Known() bool { return catStopVariants.known(int32(c)) }
func (c CatStop) Index() int32 { return int32(c) }

// ThresholdType is whether a threshold is displaced.
type ThresholdType int32

const (
	ThresholdTypeThreshold ThresholdType = iota
	ThresholdTypeDisplacedThreshold
)

var thresholdTypeVariants = variants{
	"Threshold",
	"DisplacedThreshold",
}

func (t ThresholdType) String() string { return thresholdTypeVariants.name(int32(t)) }
func (t ThresholdType) Known() bool { return thresholdTypeVariants.known(int32(t)) }
func (t ThresholdType) Index() int32 { return int32(t) }

// PapiVasi is the visual approach slope indicator installed at a threshold.
type PapiVasi int32

const (
	PapiVasiNone PapiVasi = iota
	PapiVasiPapi
	PapiVasiApapi
	PapiVasiVasis
	PapiVasiAvasis
)

var papiVasiVariants = variants{
	"None",
	"Papi",
	"Apapi",
	"Vasis",
	"Avasis",
}

func (p PapiVasi) String() string { return papiVasiVariants.name(int32(p)) }
func (p PapiVasi) Known() bool { return papiVasiVariants.known(int32(p)) }
func (p PapiVasi) Index() int32 { return int32(p) }

// LineColour is the painted colour of a guidance line.
type LineColour int32

const (
	LineColourYellow LineColour = iota
	LineColourOrange
	LineColourBlue
	LineColourWhite
)

var lineColourVariants = variants{
	"Yellow",
	"Orange",
	"Blue",
	"White",
}

func (l LineColour) String() string { return lineColourVariants.name(int32(l)) }
func (l LineColour) Known() bool { return lineColourVariants.known(int32(l)) }
func (l LineColour) Index() int32 { return int32(l) }

// Style is the painted style of a guidance line.
type Style int32

const (
	StyleSolid Style = iota
	StyleDashed
	StyleDotted
)

var styleVariants = variants{
	"Solid",
	"Dashed",
	"Dotted",
}

func (s Style) String() string { return styleVariants.name(int32(s)) }
func (s Style) Known() bool { return styleVariants.known(int32(s)) }
func (s Style) Index() int32 { return int32(s) }

// Direction is the permitted direction of travel along a guidance line.
type Direction int32

const (
	DirectionBidirectional Direction = iota
	DirectionStartToEndpoint
	DirectionEndToStartpoint
)

var directionVariants = variants{
	"Bidirectional",
	"StartToEndpoint",
	"EndToStartpoint",
}

func (d Direction) String() string { return directionVariants.name(int32(d)) }
func (d Direction) Known() bool { return directionVariants.known(int32(d)) }
func (d Direction) Index() int32 { return int32(d) }

// Bridge is whether a taxiway element passes over or under another structure.
type Bridge int32

const (
	BridgeNone Bridge = iota
	BridgeUnderpass
	BridgeOverpass
)

var bridgeVariants = variants{
	"None",
	"Underpass",
	"Overpass",
}

func (b Bridge) String() string { return bridgeVariants.name(int32(b)) }
func (b Bridge) Known() bool { return bridgeVariants.known(int32(b)) }
func (b Bridge) Index() int32 { return int32(b) }

// LineStructureType is the kind of a vertical line structure.
type LineStructureType int32

const (
	LineStructurePowerLine LineStructureType = iota
	LineStructureCableRailway
	LineStructureBushesOrTrees
	LineStructureWall
)

var lineStructureTypeVariants = variants{
	"PowerLine",
	"CableRailway",
	"BushesOrTrees",
	"Wall",
}

func (l LineStructureType) String() string { return lineStructureTypeVariants.name(int32(l)) }
func (l LineStructureType) Known() bool { return lineStructureTypeVariants.known(int32(l)) }
func (l LineStructureType) Index() int32 { return int32(l) }

// PointStructureType is the kind of a vertical point structure.
type PointStructureType int32

const (
	PointStructureSmokestack PointStructureType = iota
	PointStructurePowerlinePylon
	PointStructureAntenna
	PointStructureWindsock
	PointStructureTree
	PointStructureLightpole
	PointStructureLightStanchion
)

var pointStructureTypeVariants = variants{
	"Smokestack",
	"PowerlinePylon",
	"Antenna",
	"Windsock",
	"Tree",
	"Lightpole",
	"LightStanchion",
}

func (p PointStructureType) String() string { return pointStructureTypeVariants.name(int32(p)) }
func (p PointStructureType) Known() bool { return pointStructureTypeVariants.known(int32(p)) }
func (p PointStructureType) Index() int32 { return int32(p) }

// PolygonalStructureType is the kind of a vertical polygonal structure.
type PolygonalStructureType int32

const (
	PolygonalStructureTerminalBuilding PolygonalStructureType = iota
	PolygonalStructureHangar
	PolygonalStructureControlTower
	PolygonalStructureNonTerminalBuilding
	PolygonalStructureTank
	PolygonalStructureTree
	PolygonalStructureBush
	PolygonalStructureForest
	PolygonalStructureEarthenWorks
)

var polygonalStructureTypeVariants = variants{
	"TerminalBuilding",
	"Hangar",
	"ControlTower",
	"NonTerminalBuilding",
	"Tank",
	"Tree",
	"Bush",
	"Forest",
	"EarthenWorks",
}

func (p PolygonalStructureType) String() string { return polygonalStructureTypeVariants.name(int32(p)) }
func (p PolygonalStructureType) Known() bool { return polygonalStructureTypeVariants.known(int32(p)) }
func (p PolygonalStructureType) Index() int32 { return int32(p) }

// Material is the construction material of a vertical structure.
type Material int32

const (
	MaterialConcrete Material = iota
	MaterialMetal
	MaterialStoneOrBrick
	MaterialComposition
	MaterialRock
	MaterialEarthenWorks
	MaterialWood
)

var materialVariants = variants{
	"Concrete",
	"Metal",
	"StoneOrBrick",
	"Composition",
	"Rock",
	"EarthenWorks",
	"Wood",
}

func (m Material) String() string { return materialVariants.name(int32(m)) }
func (m Material) Known() bool { return materialVariants.known(int32(m)) }
func (m Material) Index() int32 { return int32(m) }

// Conformance is whether lighting or marking of an obstacle conforms to ICAO Annex 14.
type Conformance int32

const (
	ConformanceNonConformant Conformance = iota
	ConformanceConformant
)

var conformanceVariants = variants{
	"NonConformant",
	"Conformant",
}

func (c Conformance) String() string { return conformanceVariants.name(int32(c)) }
func (c Conformance) Known() bool { return conformanceVariants.known(int32(c)) }
func (c Conformance) Index() int32 { return int32(c) }
