package amdb

import (
	"errors"
	"fmt"
)

// ErrNoReferencePoint is returned when the aerodromereferencepoint group has no features.
var ErrNoReferencePoint = errors.New("aerodrome reference point group has no features")

// ErrReferencePointCardinality is returned in strict mode when a document
// carries more than one aerodrome reference point.
type ErrReferencePointCardinality struct {
	Count int
}

func (e *ErrReferencePointCardinality) Error() string {
	return fmt.Sprintf("expected exactly 1 aerodrome reference point, got %d", e.Count)
}

// FeatureError locates a failure at a single feature of a group.
type FeatureError struct {
	Group string // Document group name, e.g. "runwayelement"
	Index int    // Position in the group's features array
	Err   error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s feature %d: %v", e.Group, e.Index, e.Err)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}
