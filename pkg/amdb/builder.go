package amdb

import (
	"log/slog"

	"github.com/beetlebugorg/amdb/internal/parser"
	"golang.org/x/sync/errgroup"
)

// groupTask maps one feature group into its airport sequence and returns the
// features it skipped.
type groupTask func() ([]*FeatureError, error)

// builder assembles an Airport from a decoded document.
type builder struct {
	doc    *parser.Document
	opts   ParseOptions
	raw    parser.ParseOptions
	logger *slog.Logger
}

func newBuilder(doc *parser.Document, opts ParseOptions) *builder {
	return &builder{
		doc:    doc,
		opts:   opts,
		raw:    parser.ParseOptions{ValidateGeometry: opts.ValidateGeometry},
		logger: opts.logger(),
	}
}

// build maps every group of the document.
//
// Groups are mapped concurrently, bounded by ParseOptions.Workers. Each task
// owns one airport field and one result slot, so the error returned is the
// first failure in group order whatever the scheduling was.
func (b *builder) build() (*Airport, error) {
	a := &Airport{}
	if err := b.buildReferencePoint(a); err != nil {
		return nil, err
	}

	tasks := []groupTask{
		collect(b, parser.GroupApronElement, mapApronElement, &a.ApronElements),
		collect(b, parser.GroupBlastpad, mapBlastpad, &a.Blastpads),
		collect(b, parser.GroupConstructionArea, mapConstructionArea, &a.ConstructionAreas),
		collect(b, parser.GroupDeicingArea, mapDeicingArea, &a.DeicingAreas),
		collect(b, parser.GroupFinalApproachAndTakeoffArea, mapFinalApproachAndTakeoffArea, &a.FinalApproachAndTakeoffAreas),
		collect(b, parser.GroupFrequencyArea, mapFrequencyArea, &a.FrequencyAreas),
		collect(b, parser.GroupHotspot, mapHotspot, &a.Hotspots),
		collect(b, parser.GroupLandAndHoldShortOperationLocation, mapLandAndHoldShortOperationLocation, &a.LandAndHoldShortOperationLocations),
		collect(b, parser.GroupPaintedCenterline, mapPaintedCenterline, &a.PaintedCenterlines),
		collect(b, parser.GroupParkingStandArea, mapParkingStandArea, &a.ParkingStandAreas),
		collect(b, parser.GroupParkingStandLocation, mapParkingStandLocation, &a.ParkingStandLocations),
		collect(b, parser.GroupRunwayDisplacedArea, mapRunwayDisplacedArea, &a.RunwayDisplacedAreas),
		collect(b, parser.GroupRunwayElement, mapRunwayElement, &a.RunwayElements),
		collect(b, parser.GroupRunwayExitLine, mapRunwayExitLine, &a.RunwayExitLines),
		collect(b, parser.GroupRunwayIntersection, mapRunwayIntersection, &a.RunwayIntersections),
		collect(b, parser.GroupRunwayMarking, mapRunwayMarking, &a.RunwayMarkings),
		collect(b, parser.GroupRunwayShoulder, mapRunwayShoulder, &a.RunwayShoulders),
		collect(b, parser.GroupRunwayThreshold, mapRunwayThreshold, &a.RunwayThresholds),
		collect(b, parser.GroupServiceRoad, mapServiceRoad, &a.ServiceRoads),
		collect(b, parser.GroupStandGuidanceLine, mapStandGuidanceLine, &a.StandGuidanceLines),
		collect(b, parser.GroupStopway, mapStopway, &a.Stopways),
		collect(b, parser.GroupTaxiwayElement, mapTaxiwayElement, &a.TaxiwayElements),
		collect(b, parser.GroupTaxiwayGuidanceLine, mapTaxiwayGuidanceLine, &a.TaxiwayGuidanceLines),
		collect(b, parser.GroupTaxiwayHoldingPosition, mapTaxiwayHoldingPosition, &a.TaxiwayHoldingPositions),
		collect(b, parser.GroupTaxiwayIntersectionMarking, mapTaxiwayIntersectionMarking, &a.TaxiwayIntersectionMarkings),
		collect(b, parser.GroupTaxiwayShoulder, mapTaxiwayShoulder, &a.TaxiwayShoulders),
		collect(b, parser.GroupTouchdownLiftoffArea, mapTouchdownLiftoffArea, &a.TouchdownLiftoffAreas),
		collect(b, parser.GroupVerticalLineStructure, mapVerticalLineStructure, &a.VerticalLineStructures),
		collect(b, parser.GroupVerticalPointStructure, mapVerticalPointStructure, &a.VerticalPointStructures),
		collect(b, parser.GroupVerticalPolygonalStructure, mapVerticalPolygonalStructure, &a.VerticalPolygonalStructures),
		collect(b, parser.GroupWater, mapWater, &a.Waters),
	}

	type taskResult struct {
		skipped []*FeatureError
		err     error
	}
	results := make([]taskResult, len(tasks))

	var g errgroup.Group
	g.SetLimit(b.opts.workers())
	for i, task := range tasks {
		g.Go(func() error {
			skipped, err := task()
			results[i] = taskResult{skipped: skipped, err: err}
			return nil
		})
	}
	// Tasks report through results so the first failure is taken in group order.
	_ = g.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		a.skipped = append(a.skipped, r.skipped...)
	}

	b.logger.Debug("built airport",
		"airport", a.ReferencePoint.AirportID,
		"elements", a.Len(),
		"skipped", len(a.skipped))

	return a, nil
}

// buildReferencePoint maps the required aerodrome reference point. Its
// failures are fatal regardless of SkipInvalidFeatures.
func (b *builder) buildReferencePoint(a *Airport) error {
	group := b.doc.Group(parser.GroupAerodromeReferencePoint)
	switch n := len(group.Features); {
	case n == 0:
		return ErrNoReferencePoint
	case n > 1 && b.opts.StrictReferencePoint:
		return &ErrReferencePointCardinality{Count: n}
	case n > 1:
		b.logger.Warn("ignoring extra aerodrome reference points",
			"count", n)
	}

	arp, err := mapAerodromeReferencePoint(group.Features[0], b.raw)
	if err != nil {
		return &FeatureError{Group: group.Name, Index: 0, Err: err}
	}
	a.ReferencePoint = arp
	return nil
}

// collect returns a task mapping every feature of group with fn into dst.
func collect[T any](b *builder, group string, fn mapFunc[T], dst *[]T) groupTask {
	return func() ([]*FeatureError, error) {
		coll := b.doc.Group(group)
		out := make([]T, 0, len(coll.Features))
		var skipped []*FeatureError

		for i, data := range coll.Features {
			rec, err := fn(data, b.raw)
			if err != nil {
				ferr := &FeatureError{Group: group, Index: i, Err: err}
				if !b.opts.SkipInvalidFeatures {
					return nil, ferr
				}
				b.logger.Warn("skipping invalid feature",
					"group", group,
					"index", i,
					"error", err)
				skipped = append(skipped, ferr)
				continue
			}
			out = append(out, rec)
		}

		*dst = out
		b.logger.Debug("decoded group",
			"group", group,
			"features", len(out),
			"skipped", len(skipped))
		return skipped, nil
	}
}
