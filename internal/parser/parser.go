package parser

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ParseOptions configures raw feature decoding
type ParseOptions struct {
	// ValidateGeometry: if true, check geometry type tags, path length and
	// coordinate ranges in addition to the structural shape
	// Default: true
	ValidateGeometry bool
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ValidateGeometry: true,
	}
}

// FeatureCollection is one named group of a document with its features still
// undecoded. Features keep document order.
type FeatureCollection struct {
	Name     string
	Type     string
	Features []json.RawMessage
}

// Document is an AMDB document split into its declared feature groups.
type Document struct {
	groups map[string]FeatureCollection
}

// Group returns the named feature group. Every name in Groups is present in a
// decoded Document.
func (d *Document) Group(name string) FeatureCollection {
	return d.groups[name]
}

type rawCollection struct {
	Type     string             `json:"type"`
	Features *[]json.RawMessage `json:"features"`
}

// Decode splits a document into its feature groups.
//
// The top level must be an object holding every name in Groups, each mapped to
// a {type, features} collection. An empty features array is valid; a missing
// group or a missing features array is not. Names outside Groups are ignored.
func Decode(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &ErrInvalidDocument{Reason: err.Error()}
	}
	if top == nil {
		return nil, &ErrInvalidDocument{Reason: "top level is not an object"}
	}

	doc := &Document{groups: make(map[string]FeatureCollection, len(Groups))}
	for _, name := range Groups {
		raw, ok := top[name]
		if !ok {
			return nil, &ErrMissingGroup{Group: name}
		}

		var coll rawCollection
		if err := json.Unmarshal(raw, &coll); err != nil {
			return nil, &ErrInvalidDocument{Group: name, Reason: err.Error()}
		}
		if coll.Features == nil {
			return nil, &ErrInvalidDocument{Group: name, Reason: "missing features array"}
		}

		doc.groups[name] = FeatureCollection{
			Name:     name,
			Type:     coll.Type,
			Features: *coll.Features,
		}
	}

	return doc, nil
}

// FeatureCount returns the total number of features across all groups.
func (d *Document) FeatureCount() int {
	n := 0
	for _, g := range d.groups {
		n += len(g.Features)
	}
	return n
}

// String summarizes the document for logging.
func (d *Document) String() string {
	return fmt.Sprintf("amdb document: %d groups, %d features", len(d.groups), d.FeatureCount())
}
