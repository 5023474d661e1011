package parser

// Feature group names as they appear at the top level of an AMDB document.
const (
	GroupAerodromeReferencePoint           = "aerodromereferencepoint"
	GroupApronElement                      = "apronelement"
	GroupBlastpad                          = "blastpad"
	GroupConstructionArea                  = "constructionarea"
	GroupDeicingArea                       = "deicingarea"
	GroupFinalApproachAndTakeoffArea       = "finalapproachandtakeoffarea"
	GroupFrequencyArea                     = "frequencyarea"
	GroupHotspot                           = "hotspot"
	GroupLandAndHoldShortOperationLocation = "landandholdshortoperationlocation"
	GroupPaintedCenterline                 = "paintedcenterline"
	GroupParkingStandArea                  = "parkingstandarea"
	GroupParkingStandLocation              = "parkingstandlocation"
	GroupRunwayDisplacedArea               = "runwaydisplacedarea"
	GroupRunwayElement                     = "runwayelement"
	GroupRunwayExitLine                    = "runwayexitline"
	GroupRunwayIntersection                = "runwayintersection"
	GroupRunwayMarking                     = "runwaymarking"
	GroupRunwayShoulder                    = "runwayshoulder"
	GroupRunwayThreshold                   = "runwaythreshold"
	GroupServiceRoad                       = "serviceroad"
	GroupStandGuidanceLine                 = "standguidanceline"
	GroupStopway                           = "stopway"
	GroupTaxiwayElement                    = "taxiwayelement"
	GroupTaxiwayGuidanceLine               = "taxiwayguidanceline"
	GroupTaxiwayHoldingPosition            = "taxiwayholdingposition"
	GroupTaxiwayIntersectionMarking        = "taxiwayintersectionmarking"
	GroupTaxiwayShoulder                   = "taxiwayshoulder"
	GroupTouchdownLiftoffArea              = "touchdownliftoffarea"
	GroupVerticalLineStructure             = "verticallinestructure"
	GroupVerticalPointStructure            = "verticalpointstructure"
	GroupVerticalPolygonalStructure        = "verticalpolygonalstructure"
	GroupWater                             = "water"
)

// Groups lists every feature group a document must declare, in aggregate order.
var Groups = []string{
	GroupAerodromeReferencePoint,
	GroupApronElement,
	GroupBlastpad,
	GroupConstructionArea,
	GroupDeicingArea,
	GroupFinalApproachAndTakeoffArea,
	GroupFrequencyArea,
	GroupHotspot,
	GroupLandAndHoldShortOperationLocation,
	GroupPaintedCenterline,
	GroupParkingStandArea,
	GroupParkingStandLocation,
	GroupRunwayDisplacedArea,
	GroupRunwayElement,
	GroupRunwayExitLine,
	GroupRunwayIntersection,
	GroupRunwayMarking,
	GroupRunwayShoulder,
	GroupRunwayThreshold,
	GroupServiceRoad,
	GroupStandGuidanceLine,
	GroupStopway,
	GroupTaxiwayElement,
	GroupTaxiwayGuidanceLine,
	GroupTaxiwayHoldingPosition,
	GroupTaxiwayIntersectionMarking,
	GroupTaxiwayShoulder,
	GroupTouchdownLiftoffArea,
	GroupVerticalLineStructure,
	GroupVerticalPointStructure,
	GroupVerticalPolygonalStructure,
	GroupWater,
}

// Property records, one per group. Pointer fields may be absent or null;
// every other field is required. Categorical attributes stay raw integer
// indices here and are decoded by the domain mapping.

type AerodromeReferencePoint struct {
	ID     uint64  `json:"id"`
	IDArpt string  `json:"idarpt"`
	IATA   string  `json:"iata"`
	Name   string  `json:"name"`
	Elev   float64 `json:"elev"`
}

type ApronElement struct {
	ID       uint64  `json:"id"`
	IDApron  *string `json:"idapron"`
	GSurfTyp int32   `json:"gsurftyp"`
	Status   int32   `json:"status"`
}

type Blastpad struct {
	ID    uint64 `json:"id"`
	IDThr string `json:"idthr"`
}

type ConstructionArea struct {
	ID       uint64 `json:"id"`
	PStDate  string `json:"pstdate"`
	PEnDate  string `json:"pendate"`
	PIOCDate string `json:"piocdate"`
}

type DeicingArea struct {
	ID       uint64  `json:"id"`
	IDBase   *string `json:"idbase"`
	GSurfTyp int32   `json:"gsurftyp"`
	Ident    string  `json:"ident"`
	Status   int32   `json:"status"`
	RestACN  *string `json:"restacn"`
}

type FinalApproachAndTakeoffArea struct {
	ID    uint64  `json:"id"`
	IDRwy *string `json:"idrwy"`
}

type FrequencyArea struct {
	ID      uint64  `json:"id"`
	Frq     float64 `json:"frq"`
	Station *string `json:"station"`
}

type Hotspot struct {
	ID    uint64  `json:"id"`
	IDHot *string `json:"idhot"`
}

type LandAndHoldShortOperationLocation struct {
	ID    uint64 `json:"id"`
	IDP   string `json:"idp"`
	IDThr string `json:"idthr"`
}

type PaintedCenterline struct {
	ID    uint64 `json:"id"`
	IDRwy string `json:"idrwy"`
}

type ParkingStandArea struct {
	ID       uint64  `json:"id"`
	IDStd    *string `json:"idstd"`
	GSurfTyp int32   `json:"gsurftyp"`
	IDApron  *string `json:"idapron"`
	Jetway   int32   `json:"jetway"`
	Fuel     string  `json:"fuel"`
	RestACN  *string `json:"restacn"`
	Towing   int32   `json:"towing"`
	GndPower int32   `json:"gndpower"`
	TermRef  *string `json:"termref"`
}

type ParkingStandLocation struct {
	ID      uint64  `json:"id"`
	IDStd   *string `json:"idstd"`
	ACN     *string `json:"acn"`
	TermRef *string `json:"termref"`
}

type RunwayDisplacedArea struct {
	ID       uint64 `json:"id"`
	IDThr    string `json:"idthr"`
	Status   int32  `json:"status"`
	SurfType int32  `json:"surftype"`
}

type RunwayElement struct {
	ID       uint64  `json:"id"`
	IDRwy    string  `json:"idrwy"`
	Width    float64 `json:"width"`
	Length   float64 `json:"length"`
	SurfType int32   `json:"surftype"`
}

type RunwayExitLine struct {
	ID     uint64 `json:"id"`
	IDLin  string `json:"idlin"`
	Status int32  `json:"status"`
	Direc  int32  `json:"direc"`
	Color  int32  `json:"color"`
	Style  int32  `json:"style"`
}

type RunwayIntersection struct {
	ID       uint64 `json:"id"`
	IDRwi    string `json:"idrwi"`
	SurfType int32  `json:"surftype"`
}

type RunwayMarking struct {
	ID    uint64 `json:"id"`
	IDRwy string `json:"idrwy"`
}

type RunwayShoulder struct {
	ID       uint64 `json:"id"`
	IDRwy    string `json:"idrwy"`
	Status   int32  `json:"status"`
	GSurfTyp int32  `json:"gsurftyp"`
}

type RunwayThreshold struct {
	ID       uint64  `json:"id"`
	IDThr    string  `json:"idthr"`
	TDZE     float64 `json:"tdze"`
	TDZSlope float64 `json:"tdzslope"`
	BrngTrue float64 `json:"brngtrue"`
	BrngMag  float64 `json:"brngmag"`
	RwySlope float64 `json:"rwyslope"`
	TORA     float64 `json:"tora"`
	TODA     float64 `json:"toda"`
	ASDA     float64 `json:"asda"`
	LDA      float64 `json:"lda"`
	Cat      int32   `json:"cat"`
	Status   int32   `json:"status"`
	ThrType  int32   `json:"thrtype"`
	VASIS    int32   `json:"vasis"`
}

type ServiceRoad struct {
	ID       uint64  `json:"id"`
	GSurfTyp int32   `json:"gsurftyp"`
	IDBase   *string `json:"idbase"`
}

type StandGuidanceLine struct {
	ID      uint64  `json:"id"`
	IDStd   *string `json:"idstd"`
	Status  int32   `json:"status"`
	Direc   int32   `json:"direc"`
	Color   int32   `json:"color"`
	Style   int32   `json:"style"`
	TermRef *string `json:"termref"`
}

type Stopway struct {
	ID       uint64 `json:"id"`
	IDThr    string `json:"idthr"`
	Status   int32  `json:"status"`
	SurfType int32  `json:"surftype"`
}

type TaxiwayElement struct {
	ID       uint64  `json:"id"`
	IDLin    *string `json:"idlin"`
	IDApron  *string `json:"idapron"`
	GSurfTyp int32   `json:"gsurftyp"`
	Bridge   int32   `json:"bridge"`
}

type TaxiwayGuidanceLine struct {
	ID     uint64  `json:"id"`
	IDLin  *string `json:"idlin"`
	Status int32   `json:"status"`
	Direc  int32   `json:"direc"`
	Color  int32   `json:"color"`
	Style  int32   `json:"style"`
}

type TaxiwayHoldingPosition struct {
	ID      uint64  `json:"id"`
	IDP     *string `json:"idp"`
	IDLin   *string `json:"idlin"`
	Status  int32   `json:"status"`
	CatStop int32   `json:"catstop"`
}

type TaxiwayIntersectionMarking struct {
	ID    uint64 `json:"id"`
	IDLin string `json:"idlin"`
}

type TaxiwayShoulder struct {
	ID       uint64 `json:"id"`
	GSurfTyp int32  `json:"gsurftyp"`
	Status   int32  `json:"status"`
}

type TouchdownLiftoffArea struct {
	ID       uint64  `json:"id"`
	IDRwy    *string `json:"idrwy"`
	SurfType int32   `json:"surftype"`
}

type VerticalLineStructure struct {
	ID       uint64  `json:"id"`
	LinStTyp int32   `json:"linsttyp"`
	Material int32   `json:"material"`
	Height   float64 `json:"height"`
	Elev     float64 `json:"elev"`
	Lighting int32   `json:"lighting"`
	Marking  int32   `json:"marking"`
}

type VerticalPointStructure struct {
	ID       uint64  `json:"id"`
	PntStTyp int32   `json:"pntsttyp"`
	Material int32   `json:"material"`
	Height   float64 `json:"height"`
	Elev     float64 `json:"elev"`
	Lighting int32   `json:"lighting"`
	Radius   float64 `json:"radius"`
	Marking  int32   `json:"marking"`
}

type VerticalPolygonalStructure struct {
	ID       uint64  `json:"id"`
	Ident    *string `json:"ident"`
	PlyStTyp int32   `json:"plysttyp"`
	Material int32   `json:"material"`
	Height   float64 `json:"height"`
	Elev     float64 `json:"elev"`
}

// Water carries no required attributes; id is kept when the producer writes one.
type Water struct {
	ID *uint64 `json:"id"`
}
