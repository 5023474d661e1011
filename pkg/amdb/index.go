package amdb

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// indexEpsilon is the minimum extent of an indexed rectangle, in degrees
// (~11 meters at the equator). R-tree rectangles must not be degenerate.
const indexEpsilon = 0.0001

// elementIndex is an R-tree over every element of an airport.
type elementIndex struct {
	rtree *rtreego.Rtree
}

// indexedElement wraps an element for R-tree storage. seq is the element's
// position in Airport.Elements.
type indexedElement struct {
	element Element
	bound   orb.Bound
	seq     int
}

// Bounds implements rtreego.Spatial.
func (e *indexedElement) Bounds() rtreego.Rect {
	return boundToRect(e.bound, 0)
}

// boundToRect converts a bound to an R-tree rectangle grown by pad on every
// side, with each side at least indexEpsilon long.
func boundToRect(b orb.Bound, pad float64) rtreego.Rect {
	point := rtreego.Point{b.Min.Lon() - pad, b.Min.Lat() - pad}

	lonLength := b.Max.Lon() - b.Min.Lon() + 2*pad
	latLength := b.Max.Lat() - b.Min.Lat() + 2*pad
	if lonLength < indexEpsilon {
		lonLength = indexEpsilon
	}
	if latLength < indexEpsilon {
		latLength = indexEpsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

func newElementIndex(elements []Element) *elementIndex {
	// 2D, min=25 children, max=50 children
	rtree := rtreego.NewTree(2, 25, 50)
	for i, e := range elements {
		b := e.Shape().Bound()
		if b.IsEmpty() {
			continue
		}
		rtree.Insert(&indexedElement{element: e, bound: b, seq: i})
	}
	return &elementIndex{rtree: rtree}
}

// search returns the elements whose bound intersects b, edges included.
func (idx *elementIndex) search(b orb.Bound) []Element {
	if b.IsEmpty() {
		return nil
	}

	// The R-tree treats touching rectangles as disjoint, so query a padded
	// rectangle and filter candidates on the exact bounds.
	spatials := idx.rtree.SearchIntersect(boundToRect(b, indexEpsilon))

	hits := make([]*indexedElement, 0, len(spatials))
	for _, s := range spatials {
		indexed := s.(*indexedElement)
		if indexed.bound.Intersects(b) {
			hits = append(hits, indexed)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })

	result := make([]Element, len(hits))
	for i, h := range hits {
		result[i] = h.element
	}
	return result
}

// ElementsInBounds returns every element whose bounding box intersects b, in
// the order of Elements.
//
// The spatial index is built on first use.
//
// Example:
//
//	apron := orb.Bound{Min: orb.Point{-80.01, 39.99}, Max: orb.Point{-79.99, 40.01}}
//	for _, e := range airport.ElementsInBounds(apron) {
//	    fmt.Println(e.Layer(), e.ElementID())
//	}
func (a *Airport) ElementsInBounds(b orb.Bound) []Element {
	a.indexOnce.Do(func() {
		a.index = newElementIndex(a.Elements())
	})
	return a.index.search(b)
}
