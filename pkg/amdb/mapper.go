package amdb

import (
	"fmt"

	"github.com/beetlebugorg/amdb/internal/parser"
	"github.com/goccy/go-json"
)

// mapFunc decodes one raw feature of a group and converts it to its domain record.
type mapFunc[T any] func(data json.RawMessage, opts parser.ParseOptions) (T, error)

func parseRunwayField(name, value string) (RunwayID, error) {
	id, err := ParseRunwayID(value)
	if err != nil {
		return RunwayID{}, fmt.Errorf("%s: %w", name, err)
	}
	return id, nil
}

func mapAerodromeReferencePoint(data json.RawMessage, opts parser.ParseOptions) (AerodromeReferencePoint, error) {
	f, err := parser.DecodePointFeature[parser.AerodromeReferencePoint](data, opts)
	if err != nil {
		return AerodromeReferencePoint{}, err
	}
	p := f.Properties
	return AerodromeReferencePoint{
		ID:          p.ID,
		AirportID:   p.IDArpt,
		IATAID:      p.IATA,
		AirportName: p.Name,
		Elevation:   p.Elev,
		Location:    toPoint(f.Geometry.Coordinates),
	}, nil
}

func mapApronElement(data json.RawMessage, opts parser.ParseOptions) (ApronElement, error) {
	f, err := parser.DecodePolygonFeature[parser.ApronElement](data, opts)
	if err != nil {
		return ApronElement{}, err
	}
	p := f.Properties
	return ApronElement{
		ID:          p.ID,
		ApronID:     normalizeString(p.IDApron),
		SurfaceType: decodeCategory[GroundSurfaceType](p.GSurfTyp),
		Status:      decodeCategory[Status](p.Status),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapBlastpad(data json.RawMessage, opts parser.ParseOptions) (Blastpad, error) {
	f, err := parser.DecodePolygonFeature[parser.Blastpad](data, opts)
	if err != nil {
		return Blastpad{}, err
	}
	return Blastpad{
		ID:          f.Properties.ID,
		ThresholdID: f.Properties.IDThr,
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapConstructionArea(data json.RawMessage, opts parser.ParseOptions) (ConstructionArea, error) {
	f, err := parser.DecodePolygonFeature[parser.ConstructionArea](data, opts)
	if err != nil {
		return ConstructionArea{}, err
	}
	p := f.Properties
	return ConstructionArea{
		ID:                     p.ID,
		PlannedStartDate:       p.PStDate,
		PlannedEndDate:         p.PEnDate,
		PlannedInOperationDate: p.PIOCDate,
		Geometry:               toPolygon(f.Geometry),
	}, nil
}

func mapDeicingArea(data json.RawMessage, opts parser.ParseOptions) (DeicingArea, error) {
	f, err := parser.DecodePolygonFeature[parser.DeicingArea](data, opts)
	if err != nil {
		return DeicingArea{}, err
	}
	p := f.Properties
	return DeicingArea{
		ID:                 p.ID,
		BaseID:             normalizeString(p.IDBase),
		SurfaceType:        decodeCategory[GroundSurfaceType](p.GSurfTyp),
		Ident:              p.Ident,
		Status:             decodeCategory[Status](p.Status),
		RestrictedAircraft: normalizeString(p.RestACN),
		Geometry:           toPolygon(f.Geometry),
	}, nil
}

func mapFinalApproachAndTakeoffArea(data json.RawMessage, opts parser.ParseOptions) (FinalApproachAndTakeoffArea, error) {
	f, err := parser.DecodePolygonFeature[parser.FinalApproachAndTakeoffArea](data, opts)
	if err != nil {
		return FinalApproachAndTakeoffArea{}, err
	}
	return FinalApproachAndTakeoffArea{
		ID:               f.Properties.ID,
		RunwayDesignator: normalizeString(f.Properties.IDRwy),
		Geometry:         toPolygon(f.Geometry),
	}, nil
}

func mapFrequencyArea(data json.RawMessage, opts parser.ParseOptions) (FrequencyArea, error) {
	f, err := parser.DecodePolygonFeature[parser.FrequencyArea](data, opts)
	if err != nil {
		return FrequencyArea{}, err
	}
	return FrequencyArea{
		ID:        f.Properties.ID,
		Frequency: f.Properties.Frq,
		Station:   normalizeString(f.Properties.Station),
		Geometry:  toPolygon(f.Geometry),
	}, nil
}

func mapHotspot(data json.RawMessage, opts parser.ParseOptions) (Hotspot, error) {
	f, err := parser.DecodePolygonFeature[parser.Hotspot](data, opts)
	if err != nil {
		return Hotspot{}, err
	}
	return Hotspot{
		ID:        f.Properties.ID,
		HotspotID: normalizeString(f.Properties.IDHot),
		Geometry:  toPolygon(f.Geometry),
	}, nil
}

func mapLandAndHoldShortOperationLocation(data json.RawMessage, opts parser.ParseOptions) (LandAndHoldShortOperationLocation, error) {
	f, err := parser.DecodeLineStringFeature[parser.LandAndHoldShortOperationLocation](data, opts)
	if err != nil {
		return LandAndHoldShortOperationLocation{}, err
	}
	p := f.Properties
	target, err := ParseHoldingPointTarget(p.IDP)
	if err != nil {
		return LandAndHoldShortOperationLocation{}, fmt.Errorf("idp: %w", err)
	}
	return LandAndHoldShortOperationLocation{
		ID:                 p.ID,
		HoldingPointTarget: target,
		ThresholdID:        p.IDThr,
		Geometry:           toLineString(f.Geometry),
	}, nil
}

func mapPaintedCenterline(data json.RawMessage, opts parser.ParseOptions) (PaintedCenterline, error) {
	f, err := parser.DecodeLineStringFeature[parser.PaintedCenterline](data, opts)
	if err != nil {
		return PaintedCenterline{}, err
	}
	runway, err := parseRunwayField("idrwy", f.Properties.IDRwy)
	if err != nil {
		return PaintedCenterline{}, err
	}
	return PaintedCenterline{
		ID:       f.Properties.ID,
		Runway:   runway,
		Geometry: toLineString(f.Geometry),
	}, nil
}

func mapParkingStandArea(data json.RawMessage, opts parser.ParseOptions) (ParkingStandArea, error) {
	f, err := parser.DecodePolygonFeature[parser.ParkingStandArea](data, opts)
	if err != nil {
		return ParkingStandArea{}, err
	}
	p := f.Properties
	return ParkingStandArea{
		ID:                 p.ID,
		StandID:            normalizeString(p.IDStd),
		ApronID:            normalizeString(p.IDApron),
		SurfaceType:        decodeCategory[GroundSurfaceType](p.GSurfTyp),
		Jetway:             decodeCategory[Availability](p.Jetway),
		Fuel:               p.Fuel,
		RestrictedAircraft: normalizeString(p.RestACN),
		Towing:             decodeCategory[Availability](p.Towing),
		GroundPower:        decodeCategory[Availability](p.GndPower),
		TerminalName:       normalizeString(p.TermRef),
		Geometry:           toPolygon(f.Geometry),
	}, nil
}

func mapParkingStandLocation(data json.RawMessage, opts parser.ParseOptions) (ParkingStandLocation, error) {
	f, err := parser.DecodePointFeature[parser.ParkingStandLocation](data, opts)
	if err != nil {
		return ParkingStandLocation{}, err
	}
	p := f.Properties
	return ParkingStandLocation{
		ID:            p.ID,
		StandID:       normalizeString(p.IDStd),
		AircraftTypes: splitList(p.ACN),
		TerminalName:  normalizeString(p.TermRef),
		Location:      toPoint(f.Geometry.Coordinates),
	}, nil
}

func mapRunwayDisplacedArea(data json.RawMessage, opts parser.ParseOptions) (RunwayDisplacedArea, error) {
	f, err := parser.DecodePolygonFeature[parser.RunwayDisplacedArea](data, opts)
	if err != nil {
		return RunwayDisplacedArea{}, err
	}
	p := f.Properties
	return RunwayDisplacedArea{
		ID:          p.ID,
		ThresholdID: p.IDThr,
		Status:      decodeCategory[Status](p.Status),
		SurfaceType: decodeCategory[SurfaceType](p.SurfType),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapRunwayElement(data json.RawMessage, opts parser.ParseOptions) (RunwayElement, error) {
	f, err := parser.DecodePolygonFeature[parser.RunwayElement](data, opts)
	if err != nil {
		return RunwayElement{}, err
	}
	p := f.Properties
	runway, err := parseRunwayField("idrwy", p.IDRwy)
	if err != nil {
		return RunwayElement{}, err
	}
	return RunwayElement{
		ID:          p.ID,
		Runway:      runway,
		Width:       p.Width,
		Length:      p.Length,
		SurfaceType: decodeCategory[SurfaceType](p.SurfType),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapRunwayExitLine(data json.RawMessage, opts parser.ParseOptions) (RunwayExitLine, error) {
	f, err := parser.DecodeLineStringFeature[parser.RunwayExitLine](data, opts)
	if err != nil {
		return RunwayExitLine{}, err
	}
	p := f.Properties
	return RunwayExitLine{
		ID:        p.ID,
		Color:     decodeCategory[LineColour](p.Color),
		Direction: decodeCategory[Direction](p.Direc),
		Style:     decodeCategory[Style](p.Style),
		Status:    decodeCategory[Status](p.Status),
		TaxiwayID: normalizeValue(p.IDLin),
		Geometry:  toLineString(f.Geometry),
	}, nil
}

func mapRunwayIntersection(data json.RawMessage, opts parser.ParseOptions) (RunwayIntersection, error) {
	f, err := parser.DecodePolygonFeature[parser.RunwayIntersection](data, opts)
	if err != nil {
		return RunwayIntersection{}, err
	}
	return RunwayIntersection{
		ID:             f.Properties.ID,
		IntersectionID: f.Properties.IDRwi,
		SurfaceType:    decodeCategory[SurfaceType](f.Properties.SurfType),
		Geometry:       toPolygon(f.Geometry),
	}, nil
}

func mapRunwayMarking(data json.RawMessage, opts parser.ParseOptions) (RunwayMarking, error) {
	f, err := parser.DecodePolygonFeature[parser.RunwayMarking](data, opts)
	if err != nil {
		return RunwayMarking{}, err
	}
	runway, err := parseRunwayField("idrwy", f.Properties.IDRwy)
	if err != nil {
		return RunwayMarking{}, err
	}
	return RunwayMarking{
		ID:       f.Properties.ID,
		Runway:   runway,
		Geometry: toPolygon(f.Geometry),
	}, nil
}

func mapRunwayShoulder(data json.RawMessage, opts parser.ParseOptions) (RunwayShoulder, error) {
	f, err := parser.DecodePolygonFeature[parser.RunwayShoulder](data, opts)
	if err != nil {
		return RunwayShoulder{}, err
	}
	p := f.Properties
	runway, err := parseRunwayField("idrwy", p.IDRwy)
	if err != nil {
		return RunwayShoulder{}, err
	}
	return RunwayShoulder{
		ID:          p.ID,
		Runway:      runway,
		Status:      decodeCategory[Status](p.Status),
		SurfaceType: decodeCategory[GroundSurfaceType](p.GSurfTyp),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapRunwayThreshold(data json.RawMessage, opts parser.ParseOptions) (RunwayThreshold, error) {
	f, err := parser.DecodePointFeature[parser.RunwayThreshold](data, opts)
	if err != nil {
		return RunwayThreshold{}, err
	}
	p := f.Properties
	return RunwayThreshold{
		ID:                     p.ID,
		ThresholdID:            p.IDThr,
		TouchDownZoneElevation: p.TDZE,
		TouchDownZoneSlope:     p.TDZSlope,
		TrueBearing:            p.BrngTrue,
		MagneticBearing:        p.BrngMag,
		RunwaySlope:            p.RwySlope,
		TORA:                   p.TORA,
		TODA:                   p.TODA,
		ASDA:                   p.ASDA,
		LDA:                    p.LDA,
		Category:               decodeCategory[LandingCategory](p.Cat),
		PapiVasi:               decodeCategory[PapiVasi](p.VASIS),
		Status:                 decodeCategory[Status](p.Status),
		ThresholdType:          decodeCategory[ThresholdType](p.ThrType),
		Location:               toPoint(f.Geometry.Coordinates),
	}, nil
}

func mapServiceRoad(data json.RawMessage, opts parser.ParseOptions) (ServiceRoad, error) {
	f, err := parser.DecodePolygonFeature[parser.ServiceRoad](data, opts)
	if err != nil {
		return ServiceRoad{}, err
	}
	return ServiceRoad{
		ID:          f.Properties.ID,
		SurfaceType: decodeCategory[GroundSurfaceType](f.Properties.GSurfTyp),
		BaseID:      normalizeString(f.Properties.IDBase),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapStandGuidanceLine(data json.RawMessage, opts parser.ParseOptions) (StandGuidanceLine, error) {
	f, err := parser.DecodeLineStringFeature[parser.StandGuidanceLine](data, opts)
	if err != nil {
		return StandGuidanceLine{}, err
	}
	p := f.Properties
	return StandGuidanceLine{
		ID:           p.ID,
		Color:        decodeCategory[LineColour](p.Color),
		Direction:    decodeCategory[Direction](p.Direc),
		Style:        decodeCategory[Style](p.Style),
		Status:       decodeCategory[Status](p.Status),
		StandID:      normalizeString(p.IDStd),
		TerminalName: normalizeString(p.TermRef),
		Geometry:     toLineString(f.Geometry),
	}, nil
}

func mapStopway(data json.RawMessage, opts parser.ParseOptions) (Stopway, error) {
	f, err := parser.DecodePolygonFeature[parser.Stopway](data, opts)
	if err != nil {
		return Stopway{}, err
	}
	p := f.Properties
	return Stopway{
		ID:          p.ID,
		ThresholdID: p.IDThr,
		Status:      decodeCategory[Status](p.Status),
		SurfaceType: decodeCategory[SurfaceType](p.SurfType),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapTaxiwayElement(data json.RawMessage, opts parser.ParseOptions) (TaxiwayElement, error) {
	f, err := parser.DecodePolygonFeature[parser.TaxiwayElement](data, opts)
	if err != nil {
		return TaxiwayElement{}, err
	}
	p := f.Properties
	return TaxiwayElement{
		ID:          p.ID,
		TaxiwayID:   normalizeString(p.IDLin),
		ApronID:     normalizeString(p.IDApron),
		SurfaceType: decodeCategory[GroundSurfaceType](p.GSurfTyp),
		Bridge:      decodeCategory[Bridge](p.Bridge),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapTaxiwayGuidanceLine(data json.RawMessage, opts parser.ParseOptions) (TaxiwayGuidanceLine, error) {
	f, err := parser.DecodeLineStringFeature[parser.TaxiwayGuidanceLine](data, opts)
	if err != nil {
		return TaxiwayGuidanceLine{}, err
	}
	p := f.Properties
	return TaxiwayGuidanceLine{
		ID:        p.ID,
		Color:     decodeCategory[LineColour](p.Color),
		Direction: decodeCategory[Direction](p.Direc),
		Style:     decodeCategory[Style](p.Style),
		Status:    decodeCategory[Status](p.Status),
		TaxiwayID: normalizeString(p.IDLin),
		Geometry:  toLineString(f.Geometry),
	}, nil
}

func mapTaxiwayHoldingPosition(data json.RawMessage, opts parser.ParseOptions) (TaxiwayHoldingPosition, error) {
	f, err := parser.DecodeLineStringFeature[parser.TaxiwayHoldingPosition](data, opts)
	if err != nil {
		return TaxiwayHoldingPosition{}, err
	}
	p := f.Properties

	var target HoldingPointTarget
	if idp := normalizeString(p.IDP); idp != nil {
		if target, err = ParseHoldingPointTarget(*idp); err != nil {
			return TaxiwayHoldingPosition{}, fmt.Errorf("idp: %w", err)
		}
	}

	return TaxiwayHoldingPosition{
		ID:                 p.ID,
		Status:             decodeCategory[Status](p.Status),
		TaxiwayID:          normalizeString(p.IDLin),
		Category:           decodeCategory[CatStop](p.CatStop),
		HoldingPointTarget: target,
		Geometry:           toLineString(f.Geometry),
	}, nil
}

func mapTaxiwayIntersectionMarking(data json.RawMessage, opts parser.ParseOptions) (TaxiwayIntersectionMarking, error) {
	f, err := parser.DecodeLineStringFeature[parser.TaxiwayIntersectionMarking](data, opts)
	if err != nil {
		return TaxiwayIntersectionMarking{}, err
	}
	return TaxiwayIntersectionMarking{
		ID:        f.Properties.ID,
		TaxiwayID: f.Properties.IDLin,
		Geometry:  toLineString(f.Geometry),
	}, nil
}

func mapTaxiwayShoulder(data json.RawMessage, opts parser.ParseOptions) (TaxiwayShoulder, error) {
	f, err := parser.DecodePolygonFeature[parser.TaxiwayShoulder](data, opts)
	if err != nil {
		return TaxiwayShoulder{}, err
	}
	return TaxiwayShoulder{
		ID:          f.Properties.ID,
		SurfaceType: decodeCategory[GroundSurfaceType](f.Properties.GSurfTyp),
		Status:      decodeCategory[Status](f.Properties.Status),
		Geometry:    toPolygon(f.Geometry),
	}, nil
}

func mapTouchdownLiftoffArea(data json.RawMessage, opts parser.ParseOptions) (TouchdownLiftoffArea, error) {
	f, err := parser.DecodePolygonFeature[parser.TouchdownLiftoffArea](data, opts)
	if err != nil {
		return TouchdownLiftoffArea{}, err
	}
	return TouchdownLiftoffArea{
		ID:               f.Properties.ID,
		RunwayDesignator: normalizeString(f.Properties.IDRwy),
		SurfaceType:      decodeCategory[SurfaceType](f.Properties.SurfType),
		Geometry:         toPolygon(f.Geometry),
	}, nil
}

func mapVerticalLineStructure(data json.RawMessage, opts parser.ParseOptions) (VerticalLineStructure, error) {
	f, err := parser.DecodeLineStringFeature[parser.VerticalLineStructure](data, opts)
	if err != nil {
		return VerticalLineStructure{}, err
	}
	p := f.Properties
	return VerticalLineStructure{
		ID:            p.ID,
		StructureType: decodeCategory[LineStructureType](p.LinStTyp),
		Material:      decodeCategory[Material](p.Material),
		Height:        p.Height,
		Elevation:     p.Elev,
		Lighting:      decodeCategory[Conformance](p.Lighting),
		Marking:       decodeCategory[Conformance](p.Marking),
		Geometry:      toLineString(f.Geometry),
	}, nil
}

func mapVerticalPointStructure(data json.RawMessage, opts parser.ParseOptions) (VerticalPointStructure, error) {
	f, err := parser.DecodePointFeature[parser.VerticalPointStructure](data, opts)
	if err != nil {
		return VerticalPointStructure{}, err
	}
	p := f.Properties
	return VerticalPointStructure{
		ID:            p.ID,
		StructureType: decodeCategory[PointStructureType](p.PntStTyp),
		Material:      decodeCategory[Material](p.Material),
		Height:        p.Height,
		Elevation:     p.Elev,
		Lighting:      decodeCategory[Conformance](p.Lighting),
		Radius:        p.Radius,
		Marking:       decodeCategory[Conformance](p.Marking),
		Location:      toPoint(f.Geometry.Coordinates),
	}, nil
}

func mapVerticalPolygonalStructure(data json.RawMessage, opts parser.ParseOptions) (VerticalPolygonalStructure, error) {
	f, err := parser.DecodePolygonFeature[parser.VerticalPolygonalStructure](data, opts)
	if err != nil {
		return VerticalPolygonalStructure{}, err
	}
	p := f.Properties
	return VerticalPolygonalStructure{
		ID:            p.ID,
		Ident:         normalizeString(p.Ident),
		StructureType: decodeCategory[PolygonalStructureType](p.PlyStTyp),
		Material:      decodeCategory[Material](p.Material),
		Height:        p.Height,
		Elevation:     p.Elev,
		Geometry:      toPolygon(f.Geometry),
	}, nil
}

func mapWater(data json.RawMessage, opts parser.ParseOptions) (Water, error) {
	f, err := parser.DecodePolygonFeature[parser.Water](data, opts)
	if err != nil {
		return Water{}, err
	}
	w := Water{Geometry: toPolygon(f.Geometry)}
	if f.Properties.ID != nil {
		w.ID = *f.Properties.ID
	}
	return w, nil
}
